package types

type Category string

const (
	CategoryCameras   Category = "Cameras"
	CategoryLenses    Category = "Lenses"
	CategoryGimbals   Category = "Gimbals"
	CategoryLights    Category = "Lights"
	CategoryTripods   Category = "Tripods"
	CategoryRecorders Category = "Recorders"
	CategoryLaptop    Category = "Laptop"
	CategoryMacBook   Category = "MacBook"
	CategoryIPhone    Category = "iPhone"
)

var Categories = []Category{
	CategoryCameras,
	CategoryLenses,
	CategoryGimbals,
	CategoryLights,
	CategoryTripods,
	CategoryRecorders,
	CategoryLaptop,
	CategoryMacBook,
	CategoryIPhone,
}

// ParseCategory resolves a display label to its Category. The second return is
// false for anything outside the catalog taxonomy.
func ParseCategory(value string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == value {
			return c, true
		}
	}
	return "", false
}

// Content store documents carry lowercase category values; "stand" is an alias
// kept for older documents authored before tripods and stands were merged.
var contentCategoryLabels = map[string]Category{
	"camera":   CategoryCameras,
	"lens":     CategoryLenses,
	"lighting": CategoryLights,
	"gimbal":   CategoryGimbals,
	"tripod":   CategoryTripods,
	"stand":    CategoryTripods,
	"recorder": CategoryRecorders,
	"laptop":   CategoryLaptop,
	"macbook":  CategoryMacBook,
	"iphone":   CategoryIPhone,
}

func CategoryFromContent(value string) (Category, bool) {
	c, ok := contentCategoryLabels[value]
	return c, ok
}

func ConditionFromContent(value string) (Condition, bool) {
	switch value {
	case "new":
		return ConditionNew, true
	case "used":
		return ConditionUsed, true
	}
	return "", false
}

// CategoryRoute is one entry of the category navigation registry: a route slug,
// the display categories it covers and the raw content store values backing them.
type CategoryRoute struct {
	Label             string     `json:"label"`
	Slug              string     `json:"slug"`
	Categories        []Category `json:"categories"`
	ContentCategories []string   `json:"-"`
}

var CategoryRoutes = []CategoryRoute{
	{Label: "Camera", Slug: "camera", Categories: []Category{CategoryCameras}, ContentCategories: []string{"camera"}},
	{Label: "Lens", Slug: "lens", Categories: []Category{CategoryLenses}, ContentCategories: []string{"lens"}},
	{Label: "Lighting", Slug: "lighting", Categories: []Category{CategoryLights}, ContentCategories: []string{"lighting"}},
	{Label: "Gimbal", Slug: "gimbal", Categories: []Category{CategoryGimbals}, ContentCategories: []string{"gimbal"}},
	{Label: "Tripods", Slug: "tripods", Categories: []Category{CategoryTripods}, ContentCategories: []string{"tripod", "stand"}},
	{Label: "Recorder", Slug: "recorder", Categories: []Category{CategoryRecorders}, ContentCategories: []string{"recorder"}},
	{Label: "Laptop", Slug: "laptop", Categories: []Category{CategoryLaptop}, ContentCategories: []string{"laptop"}},
	{Label: "MacBook", Slug: "macbook", Categories: []Category{CategoryMacBook}, ContentCategories: []string{"macbook"}},
	{Label: "iPhone", Slug: "iphone", Categories: []Category{CategoryIPhone}, ContentCategories: []string{"iphone"}},
}

func CategoryRouteBySlug(slug string) (CategoryRoute, bool) {
	for _, item := range CategoryRoutes {
		if item.Slug == slug {
			return item, true
		}
	}
	return CategoryRoute{}, false
}
