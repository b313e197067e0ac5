package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hopecreatives/officialhope/pkg/types"
)

// WhatsApp composes pre-filled wa.me deep links for purchase intent and
// product questions. The store never processes a checkout; every "buy" is one
// of these links.
type WhatsApp struct {
	StoreName string
	PhoneIntl string
	BaseURL   string
}

func (w WhatsApp) ProductPageURL(slug string) string {
	return strings.TrimSuffix(w.BaseURL, "/") + "/product/" + slug
}

func (w WhatsApp) messageURL(message string) string {
	return "https://wa.me/" + w.PhoneIntl + "?text=" + url.QueryEscape(message)
}

// BuyLink builds the purchase-intent link for a product. The delivery location
// blank is filled in by the customer in the chat.
func (w WhatsApp) BuyLink(p types.Product, quantity int) string {
	if quantity < 1 {
		quantity = 1
	}
	message := fmt.Sprintf(
		"Hello %s, I want to buy: %s - %s. Qty: %d. Link: %s. Delivery location: ____",
		w.StoreName, p.Name, FormatPriceRWF(p.PriceRWF), quantity, w.ProductPageURL(p.Slug),
	)
	return w.messageURL(message)
}

// InquiryLink builds the product-question link.
func (w WhatsApp) InquiryLink(p types.Product) string {
	message := fmt.Sprintf(
		"Hello %s, I have a question about %s. Link: %s.",
		w.StoreName, p.Name, w.ProductPageURL(p.Slug),
	)
	return w.messageURL(message)
}

// SupportLink is the generic help entry point used outside any product page.
func (w WhatsApp) SupportLink() string {
	message := fmt.Sprintf(
		"Hello %s, I need help choosing camera gear and electronics products.",
		w.StoreName,
	)
	return w.messageURL(message)
}
