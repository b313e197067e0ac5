package server

import (
	"net/url"
	"testing"

	"github.com/hopecreatives/officialhope/pkg/types"
)

func TestParseShopQueryValues(t *testing.T) {
	query := url.Values{
		"q":         []string{"sony"},
		"category":  []string{"Cameras"},
		"brand":     []string{"Sony", "Canon"},
		"condition": []string{"New"},
		"stock":     []string{"true"},
		"sort":      []string{"price-asc"},
		"min":       []string{"100000"},
		"max":       []string{"900000"},
		"visible":   []string{"24"},
	}
	sr := &ShopRequest{}
	if err := shopRequestFromQuery(query, sr); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if sr.Query != "sony" {
		t.Errorf("Expected query sony, got %v", sr.Query)
	}
	if sr.Category != "Cameras" {
		t.Errorf("Expected category Cameras, got %v", sr.Category)
	}
	if len(sr.Brands) != 2 || sr.Brands[0] != "Sony" || sr.Brands[1] != "Canon" {
		t.Errorf("Expected brands [Sony Canon], got %v", sr.Brands)
	}
	if len(sr.Conditions) != 1 || sr.Conditions[0] != types.ConditionNew {
		t.Errorf("Expected conditions [New], got %v", sr.Conditions)
	}
	if !sr.InStock {
		t.Errorf("Expected stock filter on")
	}
	if sr.Sort != "price-asc" {
		t.Errorf("Expected sort price-asc, got %v", sr.Sort)
	}
	if sr.MinPrice == nil || *sr.MinPrice != 100000 {
		t.Errorf("Expected min price 100000, got %v", sr.MinPrice)
	}
	if sr.MaxPrice == nil || *sr.MaxPrice != 900000 {
		t.Errorf("Expected max price 900000, got %v", sr.MaxPrice)
	}
	if sr.Visible != 24 {
		t.Errorf("Expected visible 24, got %v", sr.Visible)
	}
}

func TestParseShopQueryDefaults(t *testing.T) {
	sr := &ShopRequest{}
	if err := shopRequestFromQuery(url.Values{}, sr); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if sr.Sort != "featured" {
		t.Errorf("Expected default sort featured, got %v", sr.Sort)
	}
	if sr.MinPrice != nil || sr.MaxPrice != nil {
		t.Errorf("Expected unset price bounds, got %v %v", sr.MinPrice, sr.MaxPrice)
	}
}

func TestParseShopQueryIgnoresUnknownKeys(t *testing.T) {
	query := url.Values{
		"q":    []string{"lens"},
		"utm":  []string{"newsletter"},
		"page": []string{"3"},
	}
	sr := &ShopRequest{}
	if err := shopRequestFromQuery(query, sr); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if sr.Query != "lens" {
		t.Errorf("Expected query lens, got %v", sr.Query)
	}
}
