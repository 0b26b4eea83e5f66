package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RusenAli99/say-nileti-im/internal/auth"
)

type Deps struct {
	ProductHandler *ProductHTTP
	NoteHandler    *NoteHTTP
	FinanceHandler *FinanceHTTP
	CreditHandler  *CreditHTTP
	AuthHandler    *auth.Handler
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/auth/login", d.AuthHandler.Login)

	owner := auth.RequireOwner(d.JWTSecret)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct, owner)
	products.PUT("/:id", d.ProductHandler.UpdateProduct, owner)
	products.PUT("/:id/stock", d.ProductHandler.SetStock, owner)
	products.POST("/:id/stock/adjust", d.ProductHandler.AdjustStock, owner)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct, owner)

	notes := e.Group("/notes")
	notes.GET("", d.NoteHandler.GetNotes)
	notes.POST("", d.NoteHandler.CreateNote, owner)
	notes.PUT("/:id", d.NoteHandler.UpdateNote, owner)
	notes.DELETE("/:id", d.NoteHandler.DeleteNote, owner)

	finance := e.Group("/finance")
	finance.GET("", d.FinanceHandler.GetTransactions)
	finance.GET("/summary", d.FinanceHandler.Summary)
	finance.POST("", d.FinanceHandler.CreateTransaction, owner)
	finance.PUT("/:id", d.FinanceHandler.UpdateTransaction, owner)
	finance.DELETE("/:id", d.FinanceHandler.DeleteTransaction, owner)

	customers := e.Group("/customers")
	customers.GET("", d.CreditHandler.GetCustomers)
	customers.POST("", d.CreditHandler.CreateCustomer, owner)
	customers.DELETE("/:id", d.CreditHandler.DeleteCustomer, owner)
	customers.GET("/:id/debts", d.CreditHandler.GetCustomerDebts)
	customers.GET("/:id/balance", d.CreditHandler.CustomerBalance)
	customers.POST("/:id/transactions", d.CreditHandler.RecordTransaction, owner)

	e.DELETE("/debts/:id", d.CreditHandler.DeleteDebt, owner)
}
