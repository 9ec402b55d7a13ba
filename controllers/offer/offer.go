package offercontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// OfferForm carries the multipart fields of an offer create/update. Which
// fields are required depends on the offer type; see ValidateOffer.
type OfferForm struct {
	Title           string
	Description     string
	OfferTypeID     uint
	DiscountPercent float64
	MaxDiscount     float64
	DiscountAmount  float64
	ProductID       uint
	BuyQty          int
	GetQty          int
	ThresholdAmount float64
}

// ValidateOffer checks the fields required by the selected offer type.
// Returns a field/message list; empty means valid.
func ValidateOffer(form OfferForm) []string {
	var problems []string
	if form.Title == "" {
		problems = append(problems, "title is required")
	}

	switch form.OfferTypeID {
	case models.OfferTypePercentage:
		if form.DiscountPercent <= 0 || form.DiscountPercent > 100 {
			problems = append(problems, "discount_percent must be between 0 and 100")
		}
		if form.MaxDiscount < 0 {
			problems = append(problems, "max_discount cannot be negative")
		}
	case models.OfferTypeFixed:
		if form.DiscountAmount <= 0 {
			problems = append(problems, "discount_amount must be greater than zero")
		}
	case models.OfferTypeBuyXGetY:
		if form.ProductID == 0 {
			problems = append(problems, "product_id is required for buy-x-get-y offers")
		}
		if form.BuyQty < 1 {
			problems = append(problems, "buy_qty must be at least 1")
		}
		if form.GetQty < 1 {
			problems = append(problems, "get_qty must be at least 1")
		}
	case models.OfferTypeMinOrder:
		if form.ThresholdAmount <= 0 {
			problems = append(problems, "threshold_amount must be greater than zero")
		}
		if form.DiscountAmount <= 0 {
			problems = append(problems, "discount_amount must be greater than zero")
		}
	default:
		problems = append(problems, "unknown offer_type_id")
	}
	return problems
}

func parseForm(c *gin.Context) OfferForm {
	form := OfferForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if v, err := strconv.ParseUint(c.PostForm("offer_type_id"), 10, 64); err == nil {
		form.OfferTypeID = uint(v)
	}
	if v, err := strconv.ParseFloat(c.PostForm("discount_percent"), 64); err == nil {
		form.DiscountPercent = v
	}
	if v, err := strconv.ParseFloat(c.PostForm("max_discount"), 64); err == nil {
		form.MaxDiscount = v
	}
	if v, err := strconv.ParseFloat(c.PostForm("discount_amount"), 64); err == nil {
		form.DiscountAmount = v
	}
	if v, err := strconv.ParseUint(c.PostForm("product_id"), 10, 64); err == nil {
		form.ProductID = uint(v)
	}
	if v, err := strconv.Atoi(c.PostForm("buy_qty")); err == nil {
		form.BuyQty = v
	}
	if v, err := strconv.Atoi(c.PostForm("get_qty")); err == nil {
		form.GetQty = v
	}
	if v, err := strconv.ParseFloat(c.PostForm("threshold_amount"), 64); err == nil {
		form.ThresholdAmount = v
	}
	return form
}

func applyForm(offer *models.Offer, form OfferForm) {
	offer.Title = form.Title
	offer.Description = form.Description
	offer.OfferTypeID = form.OfferTypeID
	offer.DiscountPercent = form.DiscountPercent
	offer.MaxDiscount = form.MaxDiscount
	offer.DiscountAmount = form.DiscountAmount
	offer.ProductID = form.ProductID
	offer.BuyQty = form.BuyQty
	offer.GetQty = form.GetQty
	offer.ThresholdAmount = form.ThresholdAmount
}

func offerUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "offers")
	}
	return "/var/www/jsmart/uploads/offers"
}

func saveOfferImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(offerUploadDir(), os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(offerUploadDir(), filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/offers/%s", filename), nil
}

func GetAllOffers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var offers []models.Offer
		if err := db.Preload("OfferType").Order("created_at DESC").Find(&offers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offers"})
			return
		}
		c.JSON(http.StatusOK, offers)
	}
}

func GetOfferTypes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var types []models.OfferType
		if err := db.Order("id").Find(&types).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offer types"})
			return
		}
		c.JSON(http.StatusOK, types)
	}
}

func CreateOffer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := parseForm(c)
		if problems := ValidateOffer(form); len(problems) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(problems, "; ")})
			return
		}

		var offer models.Offer
		applyForm(&offer, form)
		offer.Active = true

		if url, err := saveOfferImage(c); err == nil {
			offer.Image = url
		}

		if err := db.Create(&offer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create offer"})
			return
		}
		c.JSON(http.StatusCreated, offer)
	}
}

func UpdateOffer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var offer models.Offer
		if err := db.First(&offer, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
			return
		}

		form := parseForm(c)
		if problems := ValidateOffer(form); len(problems) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(problems, "; ")})
			return
		}

		applyForm(&offer, form)
		if url, err := saveOfferImage(c); err == nil {
			if offer.Image != "" {
				_ = os.Remove(filepath.Join(offerUploadDir(), filepath.Base(offer.Image)))
			}
			offer.Image = url
		}

		if err := db.Save(&offer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update offer"})
			return
		}
		c.JSON(http.StatusOK, offer)
	}
}

func DeleteOffer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := db.Delete(&models.Offer{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete offer"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Offer deleted successfully"})
	}
}
