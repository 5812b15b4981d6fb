package order_controller

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// DownloadOrderInvoice godoc
// @Summary Download an order invoice PDF
// @Tags CMS - Orders
// @Produce octet-stream
// @Param id path int true "Order ID"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/orders/{id}/invoice [get]
func DownloadOrderInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not fetch order"))
		return
	}

	settings := store.GetSettings(ctx)

	buf, err := generateOrderInvoicePDF(order, settings)
	if err != nil {
		log.Printf("[cms.orders] ❌ invoice generation failed for order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not generate invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func generateOrderInvoicePDF(order models.AdminOrder, settings models.AdminSettings) (bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(settings.StoreName, props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(settings.Email, props.Text{Size: 9, Color: mediumGray})
		})
	})
	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.Customer, props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{Size: 10, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.Date), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
	})
	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	for _, line := range order.Products {
		line := line
		lineTotal := line.Price * float64(line.Quantity)
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(line.Name, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", line.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(formatVND(line.Price), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(formatVND(lineTotal), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 12, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(formatVND(order.Total), props.Text{Size: 12, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	return m.Output()
}

func formatVND(amount float64) string {
	return fmt.Sprintf("%.0f₫", amount)
}
