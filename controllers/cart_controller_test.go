package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-api/controllers"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newCartApp(p *models.Principal, svc services.ICartService) *fiber.App {
	ctrl := controllers.NewCartController(svc)
	app := fiber.New()
	app.Use(middleware.WithPrincipal(p))
	app.Get("/cart/menu-items", ctrl.ListItems)
	app.Post("/cart/menu-items", ctrl.AddItem)
	app.Delete("/cart/menu-items", ctrl.Clear)
	return app
}

func TestCartController_AddItem_Success(t *testing.T) {
	mockSvc := new(MockCartService)
	unitPrice := 10.0
	mockSvc.On("AddItem", uint(7), "Greek salad", 2, &unitPrice).Return(&models.Cart{
		UserID:    7,
		MenuItem:  models.MenuItem{ID: 3, Title: "Greek salad"},
		UnitPrice: 10,
		Quantity:  2,
		Price:     20,
	}, nil)

	app := newCartApp(asPrincipal(customer(7)), mockSvc)
	body, _ := json.Marshal(map[string]interface{}{
		"menuitem": "Greek salad", "quantity": 2, "unit_price": 10,
	})
	req := httptest.NewRequest("POST", "/cart/menu-items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var response map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Contains(t, response["message"], "2 of Greek salad")
	mockSvc.AssertExpectations(t)
}

func TestCartController_AddItem_Anonymous(t *testing.T) {
	mockSvc := new(MockCartService)
	app := newCartApp(&models.Principal{}, mockSvc)

	body, _ := json.Marshal(map[string]interface{}{"menuitem": "Greek salad", "quantity": 2})
	req := httptest.NewRequest("POST", "/cart/menu-items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	mockSvc.AssertNotCalled(t, "AddItem")
}

func TestCartController_AddItem_ConflictIsNotAcceptable(t *testing.T) {
	mockSvc := new(MockCartService)
	mockSvc.On("AddItem", uint(7), "Greek salad", 2, (*float64)(nil)).Return(nil, models.ErrConflict)

	app := newCartApp(asPrincipal(customer(7)), mockSvc)
	body, _ := json.Marshal(map[string]interface{}{"menuitem": "Greek salad", "quantity": 2})
	req := httptest.NewRequest("POST", "/cart/menu-items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotAcceptable, resp.StatusCode)
}

func TestCartController_ListItems_OwnCartOnly(t *testing.T) {
	mockSvc := new(MockCartService)
	mockSvc.On("ListItems", uint(7)).Return([]models.Cart{
		{UserID: 7, MenuItem: models.MenuItem{Title: "Greek salad"}, UnitPrice: 10, Quantity: 2, Price: 20},
	}, nil)

	app := newCartApp(asPrincipal(customer(7)), mockSvc)
	resp, err := app.Test(httptest.NewRequest("GET", "/cart/menu-items", nil), int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	// The user ID comes from the principal, never from the request.
	mockSvc.AssertCalled(t, "ListItems", uint(7))
}

func TestCartController_Clear(t *testing.T) {
	mockSvc := new(MockCartService)
	mockSvc.On("Clear", uint(7)).Return(nil)

	app := newCartApp(asPrincipal(customer(7)), mockSvc)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/cart/menu-items", nil), int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	mockSvc.AssertCalled(t, "Clear", uint(7))
}
