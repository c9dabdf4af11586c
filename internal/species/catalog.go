// Package species holds the fixed label set the classifier predicts and the
// descriptive record of each label.
package species

import (
	"slices"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

var _ model.SpeciesCatalog = (*Catalog)(nil)

// Catalog is an immutable, ordered species table.
type Catalog struct {
	order   []string
	byLabel map[string]model.Species
}

// NewCatalog builds a catalog from records. Later duplicates of a label
// replace earlier ones while keeping the first position.
func NewCatalog(records ...model.Species) *Catalog {
	c := &Catalog{byLabel: make(map[string]model.Species, len(records))}
	for _, r := range records {
		if _, ok := c.byLabel[r.ClassName]; !ok {
			c.order = append(c.order, r.ClassName)
		}
		c.byLabel[r.ClassName] = r
	}
	return c
}

// Default returns the catalog of northern Thai vegetables the model is
// trained on.
func Default() *Catalog {
	return NewCatalog(defaultRecords()...)
}

// Lookup returns the record for label.
func (c *Catalog) Lookup(label string) (model.Species, bool) {
	s, ok := c.byLabel[label]
	if !ok {
		return model.Species{}, false
	}
	s.Images = slices.Clone(s.Images)
	return s, true
}

// Known reports whether label belongs to the catalog.
func (c *Catalog) Known(label string) bool {
	_, ok := c.byLabel[label]
	return ok
}

// Labels returns every label in catalog order.
func (c *Catalog) Labels() []string {
	return slices.Clone(c.order)
}

// All returns every record in catalog order.
func (c *Catalog) All() []model.Species {
	out := make([]model.Species, 0, len(c.order))
	for _, label := range c.order {
		s, _ := c.Lookup(label)
		out = append(out, s)
	}
	return out
}

func images(slug string) []string {
	return []string{
		"/images/" + slug + "1.png",
		"/images/" + slug + "2.png",
		"/images/" + slug + "3.png",
	}
}

func defaultRecords() []model.Species {
	return []model.Species{
		{
			ClassName:            "มะแขว่น",
			ThaiName:             "มะแขว่น",
			LocalName:            "หมากแขว่น",
			ScientificName:       "Zanthoxylum limonella",
			Properties:           "ช่วยขับลม แก้ท้องอืด บำรุงธาตุ",
			RecommendedMenu:      "ไส้อั่ว, น้ำพริกมะแขว่น",
			BotanicalDescription: "ไม้ยืนต้นขนาดเล็ก มีหนามตามลำต้น",
			Images:               images("makwaen"),
		},
		{
			ClassName:            "สะเดา",
			ThaiName:             "สะเดา",
			LocalName:            "ผักสะเดา",
			ScientificName:       "Azadirachta indica",
			Properties:           "ช่วยลดไข้ บำรุงเลือด",
			RecommendedMenu:      "สะเดาน้ำปลาหวาน",
			BotanicalDescription: "ไม้ยืนต้น ใบประกอบ ดอกสีขาว",
			Images:               images("sadao"),
		},
		{
			ClassName:            "สะแล",
			ThaiName:             "สะแล",
			LocalName:            "ผักสะแล",
			ScientificName:       "Bauhinia purpurea",
			Properties:           "ช่วยบำรุงร่างกาย",
			RecommendedMenu:      "แกงแคสะแล",
			BotanicalDescription: "ไม้ยืนต้น ดอกสีม่วง",
			Images:               images("salae"),
		},
		{
			ClassName:            "นางแลว",
			ThaiName:             "นางแลว",
			LocalName:            "ดอกนางแลว",
			ScientificName:       "Clerodendrum glandulosum",
			Properties:           "ช่วยลดความดัน",
			RecommendedMenu:      "แกงดอกนางแลว",
			BotanicalDescription: "ไม้พุ่ม ดอกเป็นช่อ",
			Images:               images("nanglaew"),
		},
		{
			ClassName:            "ผักเผ็ด",
			ThaiName:             "ผักเผ็ด",
			LocalName:            "ผักแพว",
			ScientificName:       "Polygonum odoratum",
			Properties:           "ช่วยขับลม เจริญอาหาร",
			RecommendedMenu:      "ลาบ, น้ำตก",
			BotanicalDescription: "ไม้ล้มลุก ใบเรียวยาว",
			Images:               images("phakphet"),
		},
		{
			ClassName:            "ขี้หูด",
			ThaiName:             "ผักขี้หูด",
			LocalName:            "ขี้หูด",
			ScientificName:       "Senna tora",
			Properties:           "ช่วยระบายอ่อน ๆ",
			RecommendedMenu:      "แกงผักขี้หูด",
			BotanicalDescription: "ไม้ล้มลุก ดอกสีเหลือง",
			Images:               images("kheehud"),
		},
	}
}
