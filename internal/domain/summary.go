package domain

// AttributeSet holds the distinct attribute values available across a
// product's variants.
type AttributeSet struct {
	Colors []string `json:"colors"`
	Sizes  []string `json:"sizes"`
}

// VariantSummary is the light variant view embedded in a product summary.
type VariantSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Color    string `json:"color"`
	Size     string `json:"size"`
	ImageURL string `json:"image_url"`
}

// ProductSummary is the product response view: the base product fields plus
// the derived attribute sets and summarized variants.
type ProductSummary struct {
	Product
	Attributes AttributeSet     `json:"attributes"`
	Variants   []VariantSummary `json:"variants"`
}
