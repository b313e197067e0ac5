package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hopecreatives/officialhope/pkg/catalog"
	"github.com/hopecreatives/officialhope/pkg/common"
	"github.com/hopecreatives/officialhope/pkg/shop"
	"github.com/hopecreatives/officialhope/pkg/types"
)

var (
	noShopQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "officialhope_shop_queries_total",
		Help: "The total number of processed shop queries",
	})
	noProductViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "officialhope_product_views_total",
		Help: "The total number of product detail views",
	})
	noBuyClicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "officialhope_buy_clicks_total",
		Help: "The total number of buy link redirects",
	})
	noInquiryClicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "officialhope_inquiry_clicks_total",
		Help: "The total number of inquiry link redirects",
	})
)

// ProductDetails is the detail page payload: the product plus its ready-made
// WhatsApp deep links.
type ProductDetails struct {
	types.Product
	BuyLink     string `json:"buyLink"`
	InquiryLink string `json:"inquiryLink"`
	PageURL     string `json:"pageUrl"`
}

func (ws *WebServer) shopParams() shop.Params {
	return shop.Params{
		Title:         ws.StoreTitle,
		Description:   ws.StoreDescription,
		ResultLabel:   "All Products",
		FallbackImage: ws.FallbackImage,
	}
}

func (ws *WebServer) renderShop(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder, records []catalog.RawProduct, params shop.Params) error {
	sr, err := GetShopRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}
	go noShopQueries.Inc()

	view := shop.NewView(records, params)
	defer view.Close()
	sr.ApplyTo(view)

	vm := view.ViewModel()
	if ws.Tracking != nil {
		go ws.Tracking.TrackSearch(sessionId, view.Snapshot(), vm.TotalCount, r)
	}
	return enc.Encode(vm)
}

func (ws *WebServer) Shop(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	records, err := ws.Source.GetProducts(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	return ws.renderShop(w, r, sessionId, enc, records, ws.shopParams())
}

func (ws *WebServer) CategoryShop(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	route, ok := types.CategoryRouteBySlug(r.PathValue("slug"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return fmt.Errorf("unknown category route %q", r.PathValue("slug"))
	}
	records, err := ws.Source.GetProductsByCategory(r.Context(), route.Slug)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	params := ws.shopParams()
	params.Title = route.Label
	params.ResultLabel = route.Label
	params.ForcedCategories = route.Categories
	return ws.renderShop(w, r, sessionId, enc, records, params)
}

func (ws *WebServer) Categories(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	return enc.Encode(types.CategoryRoutes)
}

func (ws *WebServer) lookupProduct(r *http.Request) (*types.Product, error) {
	slug := r.PathValue("slug")
	raw, err := ws.Source.GetProductBySlug(r.Context(), slug)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	product := catalog.Normalize([]catalog.RawProduct{*raw})[0]
	if len(product.Images) == 0 && ws.FallbackImage != "" {
		product.Images = []string{ws.FallbackImage}
	}
	return &product, nil
}

func (ws *WebServer) GetProduct(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	product, err := ws.lookupProduct(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	if product == nil {
		w.WriteHeader(http.StatusNotFound)
		return nil
	}
	go noProductViews.Inc()
	if ws.Tracking != nil {
		go ws.Tracking.TrackProductView(sessionId, product.Slug)
	}
	return enc.Encode(ProductDetails{
		Product:     *product,
		BuyLink:     ws.Links.BuyLink(*product, 1),
		InquiryLink: ws.Links.InquiryLink(*product),
		PageURL:     ws.Links.ProductPageURL(product.Slug),
	})
}

func quantityFromRequest(r *http.Request) int {
	qty, err := strconv.Atoi(r.URL.Query().Get("qty"))
	if err != nil || qty < 1 {
		return 1
	}
	return qty
}

func (ws *WebServer) redirectIntent(w http.ResponseWriter, r *http.Request, action string) {
	sessionId := common.HandleSessionCookie(ws.Tracking, w, r)
	product, err := ws.lookupProduct(r)
	if err != nil {
		http.Error(w, "content store unavailable", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}
	qty := quantityFromRequest(r)
	if ws.Tracking != nil {
		go ws.Tracking.TrackIntent(sessionId, product.Slug, action, qty)
	}
	var target string
	if action == "buy" {
		go noBuyClicks.Inc()
		target = ws.Links.BuyLink(*product, qty)
	} else {
		go noInquiryClicks.Inc()
		target = ws.Links.InquiryLink(*product)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (ws *WebServer) Buy(w http.ResponseWriter, r *http.Request) {
	ws.redirectIntent(w, r, "buy")
}

func (ws *WebServer) Inquire(w http.ResponseWriter, r *http.Request) {
	ws.redirectIntent(w, r, "inquire")
}

func (ws *WebServer) ClientHandler() *http.ServeMux {
	srv := http.NewServeMux()

	srv.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv.HandleFunc("GET /api/shop", common.JsonHandler(ws.Tracking, ws.Shop))
	srv.HandleFunc("GET /api/category/{slug}/shop", common.JsonHandler(ws.Tracking, ws.CategoryShop))
	srv.HandleFunc("GET /api/categories", common.JsonHandler(ws.Tracking, ws.Categories))
	srv.HandleFunc("GET /api/products/{slug}", common.JsonHandler(ws.Tracking, ws.GetProduct))
	srv.HandleFunc("GET /api/buy/{slug}", ws.Buy)
	srv.HandleFunc("GET /api/inquire/{slug}", ws.Inquire)

	return srv
}
