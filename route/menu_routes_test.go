package route

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMenu(t *testing.T, s *testServer, token string, cafeID float64, name string) float64 {
	t.Helper()
	w := s.do(t, http.MethodPost, fmt.Sprintf("/cafes/%.0f/menus", cafeID), token, gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["id"].(float64)
}

func TestMenuLifecycle(t *testing.T) {
	s := newTestServer(t, false)
	ana := s.register(t, "ana")
	cafeID := s.createCafe(t, ana, "AnaCafe")
	menusPath := fmt.Sprintf("/cafes/%.0f/menus", cafeID)

	w := s.do(t, http.MethodGet, menusPath, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Menus not found", decode(t, w)["detail"])

	w = s.do(t, http.MethodPost, menusPath, "", gin.H{"name": "Drinks"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	menu := decode(t, w)
	assert.Equal(t, "Drinks", menu["name"])
	assert.Equal(t, cafeID, menu["cafe_id"])
	drinks := menu["id"].(float64)

	createMenu(t, s, "", cafeID, "Desserts")

	w = s.do(t, http.MethodGet, menusPath, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "Drinks", list[0]["name"])
	assert.Equal(t, "Desserts", list[1]["name"])

	w = s.do(t, http.MethodPut, fmt.Sprintf("/cafes/menus/%.0f", drinks), "", gin.H{"name": "Hot drinks"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Hot drinks", decode(t, w)["name"])

	w = s.do(t, http.MethodPost, fmt.Sprintf("%s/%.0f/products", menusPath, drinks), "", gin.H{"name": "Tea", "price": 5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/cafes/menus/%.0f", drinks), "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = s.do(t, http.MethodGet, fmt.Sprintf("%s/%.0f/products", menusPath, drinks), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/cafes/menus/%.0f", drinks), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuRejects(t *testing.T) {
	s := newTestServer(t, false)
	ana := s.register(t, "ana")
	cafeID := s.createCafe(t, ana, "AnaCafe")

	tests := []struct {
		name   string
		method string
		path   string
		body   gin.H
		status int
	}{
		{"create for unknown cafe", http.MethodPost, "/cafes/999/menus", gin.H{"name": "Drinks"}, http.StatusNotFound},
		{"create without name", http.MethodPost, fmt.Sprintf("/cafes/%.0f/menus", cafeID), gin.H{}, http.StatusUnprocessableEntity},
		{"list for unknown cafe", http.MethodGet, "/cafes/999/menus", nil, http.StatusNotFound},
		{"update unknown menu", http.MethodPut, "/cafes/menus/999", gin.H{"name": "x"}, http.StatusNotFound},
		{"update with bad id", http.MethodPut, "/cafes/menus/abc", gin.H{"name": "x"}, http.StatusUnprocessableEntity},
		{"delete unknown menu", http.MethodDelete, "/cafes/menus/999", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body interface{}
			if tt.body != nil {
				body = tt.body
			}
			w := s.do(t, tt.method, tt.path, "", body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestMenuOwnershipRequired(t *testing.T) {
	s := newTestServer(t, true)
	ana := s.register(t, "ana")
	bob := s.register(t, "bob")
	cafeID := s.createCafe(t, ana, "AnaCafe")
	menusPath := fmt.Sprintf("/cafes/%.0f/menus", cafeID)

	w := s.do(t, http.MethodPost, menusPath, "", gin.H{"name": "Drinks"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, menusPath, bob, gin.H{"name": "Drinks"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You are not the owner of this cafe", decode(t, w)["detail"])

	menuID := createMenu(t, s, ana, cafeID, "Drinks")
	menuPath := fmt.Sprintf("/cafes/menus/%.0f", menuID)
	productsPath := fmt.Sprintf("%s/%.0f/products", menusPath, menuID)

	w = s.do(t, http.MethodPut, menuPath, bob, gin.H{"name": "Mine"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, productsPath, bob, gin.H{"name": "Tea", "price": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, productsPath, ana, gin.H{"name": "Tea", "price": 5})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodDelete, menuPath, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, menusPath, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, menuPath, ana, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
