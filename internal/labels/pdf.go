// Package labels рендерит печатные QR-этикетки активов в многостраничный PDF.
package labels

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// ExportFilename — имя файла выгрузки для скачивания.
const ExportFilename = "asset_qr_codes.pdf"

// Геометрия листа A4 в пунктах. Значения — вопрос конфигурации: важно
// лишь, чтобы коды не перекрывались и не выходили за страницу.
const (
	qrSize     = 100.0
	startX     = 50.0
	stepX      = 150.0
	stepY      = 150.0
	topOffset  = 150.0 // расстояние от верха до нижней кромки первого ряда
	captionGap = 15.0
	rightPad   = 120.0
	bottomPad  = 100.0
)

// RenderLabels собирает PDF: QR-код с подписью-тегом на каждый элемент,
// ряды слева направо, перенос ряда у правого края, новая страница у нижнего.
// Пустой список даёт корректный пустой документ.
func RenderLabels(tags []string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPage()
	width, height := pdf.GetPageSize()

	// Курсор в координатах «снизу вверх»: y — нижняя кромка ряда.
	x, y := startX, height-topOffset

	for i, tag := range tags {
		png, err := qrcode.Encode(tag, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("encode qr for %q: %w", tag, err)
		}
		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		name := fmt.Sprintf("qr-%d", i)
		pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(png))

		pdf.ImageOptions(name, x, height-y-qrSize, qrSize, qrSize, false, opt, 0, "")
		pdf.Text(x, height-(y-captionGap), tag)

		x += stepX
		if x > width-rightPad {
			x = startX
			y -= stepY
			if y < bottomPad {
				pdf.AddPage()
				y = height - topOffset
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
