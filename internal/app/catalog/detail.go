package catalog

import "encoding/json"

// ---------------------------------------------------------------------------
// Product detail domain types
// ---------------------------------------------------------------------------

type ProductDetail struct {
	SKU      int64
	Title    string
	Content  []ContentField
	Variants []Variant
}

type Variant struct {
	SKU     int64
	Title   string
	InStock bool
	Images  []Image
}

type Image struct {
	Original  string
	Thumbnail string
}

// ContentField is one structured product attribute. The shape of its value
// is fixed by the union tag the API returns for it.
type ContentField struct {
	Key   string
	Value ContentValue
}

// ContentValue is the closed set of content value shapes. Exactly one
// concrete type exists per content kind.
type ContentValue interface {
	contentValue()
}

type StringValue string

type StringListValue []string

type IntValue int64

type IntListValue []int64

type RichContentValue RichContent

type RichContentListValue []RichContent

type RichContent struct {
	Blocks []RichContentBlock
}

type RichContentBlock struct {
	Type    string
	Content string
}

func (StringValue) contentValue()          {}
func (StringListValue) contentValue()      {}
func (IntValue) contentValue()             {}
func (IntListValue) contentValue()         {}
func (RichContentValue) contentValue()     {}
func (RichContentListValue) contentValue() {}

// UnmarshalJSON decodes one {key, value} content entry, resolving the value
// union by whichever variant key is present.
func (f *ContentField) UnmarshalJSON(b []byte) error {
	var wire struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	f.Key = wire.Key
	if len(wire.Value) == 0 {
		f.Value = nil
		return nil
	}
	v, err := decodeContentValue(wire.Value)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

type richContentWire struct {
	Content []struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	} `json:"content"`
}

func (w richContentWire) toDomain() RichContent {
	blocks := make([]RichContentBlock, 0, len(w.Content))
	for _, b := range w.Content {
		blocks = append(blocks, RichContentBlock{Type: b.Type, Content: b.Content})
	}
	return RichContent{Blocks: blocks}
}

// decodeContentValue picks the populated union variant by its key. An
// object with no known variant key (an unknown future content kind, or a
// fragment that matched nothing) decodes to an absent value, not an error.
func decodeContentValue(raw json.RawMessage) (ContentValue, error) {
	var probe struct {
		StringValue          *string           `json:"stringValue"`
		StringListValue      []string          `json:"stringListValue"`
		IntValue             *int64            `json:"intValue"`
		IntListValue         []int64           `json:"intListValue"`
		RichContentValue     *richContentWire  `json:"richContentValue"`
		RichContentListValue []richContentWire `json:"richContentListValue"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	switch {
	case probe.StringValue != nil:
		return StringValue(*probe.StringValue), nil
	case probe.StringListValue != nil:
		return StringListValue(probe.StringListValue), nil
	case probe.IntValue != nil:
		return IntValue(*probe.IntValue), nil
	case probe.IntListValue != nil:
		return IntListValue(probe.IntListValue), nil
	case probe.RichContentValue != nil:
		return RichContentValue(probe.RichContentValue.toDomain()), nil
	case probe.RichContentListValue != nil:
		list := make(RichContentListValue, 0, len(probe.RichContentListValue))
		for _, rc := range probe.RichContentListValue {
			list = append(list, rc.toDomain())
		}
		return list, nil
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Wire shape of the Product query payload
// ---------------------------------------------------------------------------

type productWire struct {
	SKU      int64          `json:"sku"`
	Title    string         `json:"title"`
	Content  []ContentField `json:"content"`
	Variants []variantWire  `json:"variants"`
}

type variantWire struct {
	SKU     int64       `json:"sku"`
	Title   string      `json:"title"`
	InStock bool        `json:"inStock"`
	Images  []imageWire `json:"images"`
}

type imageWire struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
}

func (p productWire) toDomain() ProductDetail {
	d := ProductDetail{
		SKU:     p.SKU,
		Title:   p.Title,
		Content: p.Content,
	}
	d.Variants = make([]Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		images := make([]Image, 0, len(v.Images))
		for _, img := range v.Images {
			images = append(images, Image{Original: img.Original, Thumbnail: img.Thumbnail})
		}
		d.Variants = append(d.Variants, Variant{
			SKU:     v.SKU,
			Title:   v.Title,
			InStock: v.InStock,
			Images:  images,
		})
	}
	return d
}
