package models

// DesignImage is a rendered output image of an AI-generated design
type DesignImage struct {
	ID   string `json:"_id"`
	Path string `json:"path"`
	CDN  string `json:"cdn"`
}

// DesignIntent carries the primary/secondary styling intent of a design
type DesignIntent struct {
	Primary   string  `json:"primary"`
	Secondary *string `json:"secondary,omitempty"`
}

// Design is one feed entry of the design viewer
type Design struct {
	ID           string        `json:"_id"`
	Intent       DesignIntent  `json:"intent"`
	RoomType     string        `json:"roomType"`
	DesignImages []DesignImage `json:"designImages"`
	Title        string        `json:"title,omitempty"`
}

// Dimension holds product measurements in inches
type Dimension struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// Retailer identifies where an asset can be purchased
type Retailer struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	WhiteLabelName string `json:"whiteLabelName,omitempty"`
}

// ProductImage is a catalog image of an asset
type ProductImage struct {
	ID      string `json:"_id"`
	FileURL string `json:"fileUrl"`
	CDN     string `json:"cdn"`
}

// Asset is one shoppable product placed in a design
type Asset struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	MSRP          float64        `json:"msrp"`
	Retailer      Retailer       `json:"retailer"`
	RetailLink    string         `json:"retailLink"`
	ProductImages []ProductImage `json:"productImages"`
	Dimension     Dimension      `json:"dimension"`
}

// DesignDetail is the full design record behind a feed entry
type DesignDetail struct {
	Design
	Assets         []Asset `json:"assets"`
	BeforeImage    string  `json:"beforeImage"`
	CleanRoomImage string  `json:"cleanRoomImage"`
	Style          string  `json:"style"`
	Project        string  `json:"project"`
}
