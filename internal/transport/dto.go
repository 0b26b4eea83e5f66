package transport

type ProductRequest struct {
	Category        string  `json:"category"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Storage         string  `json:"storage"`
	RAM             string  `json:"ram"`
	Color           string  `json:"color"`
	ScreenSize      string  `json:"screenSize"`
	Camera          string  `json:"camera"`
	Battery         string  `json:"battery"`
	OS              string  `json:"os"`
	Warranty        string  `json:"warranty"`
	Price           float64 `json:"price"`
	BuyingPrice     float64 `json:"buyingPrice"`
	Quantity        int     `json:"quantity"`
	ImageURI        string  `json:"imageUri"`
	Cosmetic        string  `json:"cosmetic"`
	BatteryHealth   string  `json:"batteryHealth"`
	IMEIStatus      string  `json:"imeiStatus"`
	HasBox          bool    `json:"hasBox"`
	HasChangedParts bool    `json:"hasChangedParts"`
}

type SetStockRequest struct {
	Quantity int `json:"quantity"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

type NoteRequest struct {
	Text string `json:"text"`
}

type TransactionRequest struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CreditTransactionRequest struct {
	Mode        string  `json:"mode"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}
