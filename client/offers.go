package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// Offer payloads are a tagged union: one variant per offer architecture,
// each carrying only its own required fields. The server re-validates per
// type.

type OfferPayload interface {
	offerTypeID() uint
	formFields() map[string]string
}

type PercentageOffer struct {
	Title           string
	Description     string
	DiscountPercent float64
	MaxDiscount     float64
}

func (o PercentageOffer) offerTypeID() uint { return models.OfferTypePercentage }
func (o PercentageOffer) formFields() map[string]string {
	return map[string]string{
		"title":            o.Title,
		"description":      o.Description,
		"discount_percent": strconv.FormatFloat(o.DiscountPercent, 'f', -1, 64),
		"max_discount":     strconv.FormatFloat(o.MaxDiscount, 'f', -1, 64),
	}
}

type FixedOffer struct {
	Title          string
	Description    string
	DiscountAmount float64
}

func (o FixedOffer) offerTypeID() uint { return models.OfferTypeFixed }
func (o FixedOffer) formFields() map[string]string {
	return map[string]string{
		"title":           o.Title,
		"description":     o.Description,
		"discount_amount": strconv.FormatFloat(o.DiscountAmount, 'f', -1, 64),
	}
}

type BuyXGetYOffer struct {
	Title       string
	Description string
	ProductID   uint
	BuyQty      int
	GetQty      int
}

func (o BuyXGetYOffer) offerTypeID() uint { return models.OfferTypeBuyXGetY }
func (o BuyXGetYOffer) formFields() map[string]string {
	return map[string]string{
		"title":       o.Title,
		"description": o.Description,
		"product_id":  strconv.FormatUint(uint64(o.ProductID), 10),
		"buy_qty":     strconv.Itoa(o.BuyQty),
		"get_qty":     strconv.Itoa(o.GetQty),
	}
}

type MinOrderOffer struct {
	Title           string
	Description     string
	ThresholdAmount float64
	DiscountAmount  float64
}

func (o MinOrderOffer) offerTypeID() uint { return models.OfferTypeMinOrder }
func (o MinOrderOffer) formFields() map[string]string {
	return map[string]string{
		"title":            o.Title,
		"description":      o.Description,
		"threshold_amount": strconv.FormatFloat(o.ThresholdAmount, 'f', -1, 64),
		"discount_amount":  strconv.FormatFloat(o.DiscountAmount, 'f', -1, 64),
	}
}

type OffersService struct {
	client *Client
}

func (c *Client) Offers() *OffersService {
	return &OffersService{client: c}
}

func (s *OffersService) GetAll(ctx context.Context) ([]models.Offer, error) {
	var offers []models.Offer
	err := s.client.do(ctx, "GET", "/admin/offers", nil, &offers)
	return offers, err
}

func (s *OffersService) GetTypes(ctx context.Context) ([]models.OfferType, error) {
	var types []models.OfferType
	err := s.client.do(ctx, "GET", "/admin/offers/types", nil, &types)
	return types, err
}

func buildOfferForm(payload OfferPayload, imageName string, image io.Reader) (string, *bytes.Buffer, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := payload.formFields()
	fields["offer_type_id"] = strconv.FormatUint(uint64(payload.offerTypeID()), 10)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return "", nil, err
		}
	}

	if image != nil {
		part, err := writer.CreateFormFile("image", imageName)
		if err != nil {
			return "", nil, err
		}
		if _, err := io.Copy(part, image); err != nil {
			return "", nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return "", nil, err
	}
	return writer.FormDataContentType(), body, nil
}

// Create posts a new offer as a multipart form; image is optional.
func (s *OffersService) Create(ctx context.Context, payload OfferPayload, imageName string, image io.Reader) (models.Offer, error) {
	contentType, body, err := buildOfferForm(payload, imageName, image)
	if err != nil {
		return models.Offer{}, err
	}

	var offer models.Offer
	err = s.client.doMultipart(ctx, "POST", "/admin/offers", contentType, body, &offer)
	return offer, err
}

func (s *OffersService) Update(ctx context.Context, id uint, payload OfferPayload, imageName string, image io.Reader) (models.Offer, error) {
	contentType, body, err := buildOfferForm(payload, imageName, image)
	if err != nil {
		return models.Offer{}, err
	}

	var offer models.Offer
	err = s.client.doMultipart(ctx, "PUT", fmt.Sprintf("/admin/offers/%d", id), contentType, body, &offer)
	return offer, err
}

func (s *OffersService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/admin/offers/%d", id), nil, nil)
}
