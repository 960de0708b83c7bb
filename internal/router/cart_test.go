package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailwave.be/booking-api/pkg/models"
)

type cartPayload struct {
	SessionID string            `json:"session_id"`
	Items     []models.LineItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Total     int               `json:"total"`
}

func addItem(t *testing.T, session, offeringID, optionLabel string) cartPayload {
	t.Helper()

	body := map[string]string{"offeringId": offeringID}
	if optionLabel != "" {
		body["optionLabel"] = optionLabel
	}

	w := perform(t, http.MethodPost, "/api/cart/"+session+"/items", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var payload cartPayload
	decodeEnvelope(t, w, &payload)
	return payload
}

func TestGetCartStartsEmpty(t *testing.T) {
	setupTest(t)

	w := perform(t, http.MethodGet, "/api/cart/sess-abc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload cartPayload
	env := decodeEnvelope(t, w, &payload)
	assert.True(t, env.Success)
	assert.Equal(t, 0, payload.ItemCount)
	assert.Equal(t, 0, payload.Total)
}

func TestAddToCartDefaultsToFirstTier(t *testing.T) {
	setupTest(t)

	payload := addItem(t, "sess-abc", "s1", "")
	require.Len(t, payload.Items, 1)
	require.NotNil(t, payload.Items[0].SelectedOption)
	assert.Equal(t, "Fauteuil", payload.Items[0].SelectedOption.Label)
	assert.Equal(t, 40, payload.Total)
}

func TestDuplicateAddsAndPositionalRemoval(t *testing.T) {
	setupTest(t)

	addItem(t, "sess-abc", "s1", "Fauteuil")
	payload := addItem(t, "sess-abc", "s1", "Canapé 2/3 places")
	assert.Equal(t, 100, payload.Total)
	assert.Equal(t, 2, payload.ItemCount)

	w := perform(t, http.MethodDelete, "/api/cart/sess-abc/items/0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	decodeEnvelope(t, w, &payload)
	assert.Equal(t, 60, payload.Total)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Canapé 2/3 places", payload.Items[0].SelectedOption.Label)
}

func TestAddToCartUnknownOffering(t *testing.T) {
	setupTest(t)

	w := perform(t, http.MethodPost, "/api/cart/sess-abc/items", map[string]string{"offeringId": "s999"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartUnknownOption(t *testing.T) {
	setupTest(t)

	w := perform(t, http.MethodPost, "/api/cart/sess-abc/items",
		map[string]string{"offeringId": "s1", "optionLabel": "Canapé volant"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFromCartOutOfRange(t *testing.T) {
	setupTest(t)
	addItem(t, "sess-abc", "s1", "")

	w := perform(t, http.MethodDelete, "/api/cart/sess-abc/items/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(t, http.MethodDelete, "/api/cart/sess-abc/items/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The existing item is never at risk.
	w = perform(t, http.MethodGet, "/api/cart/sess-abc", nil)
	var payload cartPayload
	decodeEnvelope(t, w, &payload)
	assert.Equal(t, 1, payload.ItemCount)
}

func TestClearCart(t *testing.T) {
	setupTest(t)
	addItem(t, "sess-abc", "s1", "")

	w := perform(t, http.MethodDelete, "/api/cart/sess-abc/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, http.MethodGet, "/api/cart/sess-abc", nil)
	var payload cartPayload
	decodeEnvelope(t, w, &payload)
	assert.Equal(t, 0, payload.ItemCount)
}

func TestCartSessionValidation(t *testing.T) {
	setupTest(t)

	w := perform(t, http.MethodGet, "/api/cart/ab", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllOfferings(t *testing.T) {
	setupTest(t)

	w := perform(t, http.MethodGet, "/api/offerings/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var offerings []models.Offering
	decodeEnvelope(t, w, &offerings)
	assert.Len(t, offerings, 4)
}

func TestGetOfferingByID(t *testing.T) {
	setupTest(t)

	w := perform(t, http.MethodGet, "/api/offerings/s2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var offering models.Offering
	decodeEnvelope(t, w, &offering)
	assert.Equal(t, "Nettoyage Matelas", offering.Name)

	w = perform(t, http.MethodGet, "/api/offerings/s999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJournalEndpoints(t *testing.T) {
	setupTest(t)

	w := perform(t, http.MethodGet, "/api/journal/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var articles []models.JournalArticle
	decodeEnvelope(t, w, &articles)
	assert.Len(t, articles, 2)

	w = perform(t, http.MethodGet, "/api/journal/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	setupTest(t)

	w := perform(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
