package offercontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

func TestValidateOfferPercentage(t *testing.T) {
	form := OfferForm{Title: "Summer sale", OfferTypeID: models.OfferTypePercentage, DiscountPercent: 15}
	assert.Empty(t, ValidateOffer(form))

	form.DiscountPercent = 0
	assert.NotEmpty(t, ValidateOffer(form))

	form.DiscountPercent = 120
	assert.NotEmpty(t, ValidateOffer(form))
}

func TestValidateOfferFixed(t *testing.T) {
	form := OfferForm{Title: "Flat 50 off", OfferTypeID: models.OfferTypeFixed, DiscountAmount: 50}
	assert.Empty(t, ValidateOffer(form))

	form.DiscountAmount = 0
	assert.NotEmpty(t, ValidateOffer(form))
}

func TestValidateOfferBuyXGetY(t *testing.T) {
	form := OfferForm{
		Title:       "Buy 2 get 1",
		OfferTypeID: models.OfferTypeBuyXGetY,
		ProductID:   12,
		BuyQty:      2,
		GetQty:      1,
	}
	assert.Empty(t, ValidateOffer(form))

	form.ProductID = 0
	assert.NotEmpty(t, ValidateOffer(form))

	form.ProductID = 12
	form.GetQty = 0
	assert.NotEmpty(t, ValidateOffer(form))
}

func TestValidateOfferMinOrder(t *testing.T) {
	form := OfferForm{
		Title:           "Spend 500 save 50",
		OfferTypeID:     models.OfferTypeMinOrder,
		ThresholdAmount: 500,
		DiscountAmount:  50,
	}
	assert.Empty(t, ValidateOffer(form))

	form.ThresholdAmount = 0
	assert.NotEmpty(t, ValidateOffer(form))
}

func TestValidateOfferRejectsUnknownTypeAndMissingTitle(t *testing.T) {
	problems := ValidateOffer(OfferForm{OfferTypeID: 99})
	assert.Len(t, problems, 2) // missing title + unknown type
}
