package models

import "time"

// TimeLayout is the timestamp format persisted in the date/created_at
// columns. It matches the ISO-8601 strings already present in data files
// written by earlier versions of the app, so existing rows keep sorting
// and parsing correctly next to new ones.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Stamp renders t in the persisted timestamp format, always UTC.
func Stamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Product struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Category        string  `gorm:"column:category;not null" json:"category"`
	Brand           string  `gorm:"column:brand;not null"    json:"brand"`
	Model           string  `gorm:"column:model;not null"    json:"model"`
	Storage         string  `gorm:"column:storage"           json:"storage"`
	RAM             string  `gorm:"column:ram"               json:"ram"`
	Color           string  `gorm:"column:color"             json:"color"`
	ScreenSize      string  `gorm:"column:screenSize"        json:"screenSize"`
	Camera          string  `gorm:"column:camera"            json:"camera"`
	Battery         string  `gorm:"column:battery"           json:"battery"`
	OS              string  `gorm:"column:os"                json:"os"`
	Warranty        string  `gorm:"column:warranty"          json:"warranty"`
	Price           float64 `gorm:"column:price"             json:"price"`
	BuyingPrice     float64 `gorm:"column:buyingPrice"       json:"buyingPrice"`
	Quantity        int     `gorm:"column:quantity"          json:"quantity"`
	ImageURI        string  `gorm:"column:imageUri"          json:"imageUri"`
	Cosmetic        string  `gorm:"column:cosmetic"          json:"cosmetic"`
	BatteryHealth   string  `gorm:"column:batteryHealth"     json:"batteryHealth"`
	IMEIStatus      string  `gorm:"column:imeiStatus"        json:"imeiStatus"`
	HasBox          bool    `gorm:"column:hasBox"            json:"hasBox"`
	HasChangedParts bool    `gorm:"column:hasChangedParts"   json:"hasChangedParts"`
}

func (Product) TableName() string { return "products" }

type Note struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Text string `gorm:"column:text" json:"text"`
	Date string `gorm:"column:date" json:"date"`
}

func (Note) TableName() string { return "notes" }

// FinanceTransaction is one row of the cash ledger. Amount is always a
// positive magnitude; the sign of its effect on the balance comes from Type.
type FinanceTransaction struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Type        string  `gorm:"column:type"        json:"type"`
	Amount      float64 `gorm:"column:amount"      json:"amount"`
	Description string  `gorm:"column:description" json:"description"`
	Date        string  `gorm:"column:date"        json:"date"`
}

func (FinanceTransaction) TableName() string { return "finance" }

type Customer struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"column:name;not null" json:"name"`
	Phone     string `gorm:"column:phone"         json:"phone"`
	CreatedAt string `gorm:"column:created_at"    json:"created_at"`

	// TotalDebt is derived (SUM over debts), never written.
	TotalDebt float64 `gorm:"column:totalDebt;->" json:"totalDebt"`
}

func (Customer) TableName() string { return "customers" }

// DebtEntry is a signed credit-book line: positive amounts increase what
// the customer owes, negative amounts record a payment.
type DebtEntry struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  uint    `gorm:"column:customer_id;not null" json:"customer_id"`
	Amount      float64 `gorm:"column:amount;not null" json:"amount"`
	Description string  `gorm:"column:description" json:"description"`
	Date        string  `gorm:"column:date"        json:"date"`
}

func (DebtEntry) TableName() string { return "debts" }
