package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
	"github.com/lfmorato/event-report-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// Paleta do relatório, a mesma das tiles de KPI e das séries do gráfico.
var (
	colorTotal    = [3]int{52, 152, 219}
	colorPaid     = [3]int{39, 174, 96}
	colorCourtesy = [3]int{243, 156, 18}
	colorOpen     = [3]int{192, 57, 43}

	headerColor     = [3]int{40, 40, 40}
	headerTextColor = [3]int{255, 255, 255}
	bodyTextColor   = [3]int{50, 50, 50}
	lineColor       = [3]int{200, 200, 200}
)

func (r *ExportRepositoryImpl) ExportSummaryToCSV(summary *entity.Summary, outputDir string) (string, error) {
	outputFilename, err := generateReportFilename(summary, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"Event", "Year", "Generated At", "Total", "Paid", "Courtesy", "Open"})
	writer.Write([]string{
		summary.Event, summary.Year, summary.GeneratedAt,
		strconv.Itoa(summary.TotalCount), strconv.Itoa(summary.PaidCount),
		strconv.Itoa(summary.CourtesyCount), strconv.Itoa(summary.OpenCount),
	})

	writeCrossTab := func(title string, rows []entity.CrossTabRow) {
		writer.Write(nil)
		writer.Write([]string{title, "Total", "Paid", "Courtesy", "Open"})
		for _, row := range rows {
			writer.Write([]string{
				row.Label, strconv.Itoa(row.Total), strconv.Itoa(row.Paid),
				strconv.Itoa(row.Courtesy), strconv.Itoa(row.Open),
			})
		}
	}
	writeCrossTab("Category", summary.ByCategory)
	writeCrossTab("Country", summary.ByCountry)
	writeCrossTab("State (BR)", summary.ByState)

	writer.Write(nil)
	writer.Write([]string{"Week Ending", "Paid", "Courtesy", "Open"})
	for _, week := range summary.Weekly {
		writer.Write([]string{
			week.WeekEnding.Format("2006-01-02"),
			strconv.Itoa(week.Paid), strconv.Itoa(week.Courtesy), strconv.Itoa(week.Open),
		})
	}

	writer.Write(nil)
	writer.Write([]string{"Region", "Count", "Share"})
	for _, region := range summary.Regions {
		writer.Write([]string{
			string(region.Region), strconv.Itoa(region.Count),
			fmt.Sprintf("%.0f%%", region.Share*100),
		})
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToJSON(summary *entity.Summary, outputDir string) (string, error) {
	outputFilename, err := generateReportFilename(summary, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToPDF(summary *entity.Summary, outputDir string) (string, error) {
	outputFilename, err := generateReportFilename(summary, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawSectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawFooter := func(page int) {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Relatório de Inscrições | Gerado em: %s", summary.GeneratedAt)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", page)), "", 0, "R", false, 0, "")
	}

	// Página 1: cabeçalho, KPIs e evolução semanal
	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Relatório - %s %s", summary.Event, summary.Year)), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Gerado em: %s", summary.GeneratedAt)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	drawKPITiles(pdf, tr, summary)
	pdf.Ln(12)

	drawSectionTitle("Evolução Semanal")
	drawWeeklyChart(pdf, tr, summary)
	drawFooter(1)

	// Página 2: distribuições por região e faixa etária
	pdf.AddPage()
	drawSectionTitle("Distribuição por Região")
	regionBars := make([]barRow, 0, len(summary.Regions))
	for _, region := range summary.Regions {
		regionBars = append(regionBars, barRow{
			Label: string(region.Region),
			Count: region.Count,
			Note:  fmt.Sprintf("%.0f%%", region.Share*100),
		})
	}
	drawBarList(pdf, tr, regionBars, colorTotal)
	pdf.Ln(8)

	drawSectionTitle("Faixa Etária")
	ageBars := make([]barRow, 0, len(summary.Ages))
	for _, age := range summary.Ages {
		ageBars = append(ageBars, barRow{Label: age.Bucket, Count: age.Count})
	}
	drawBarList(pdf, tr, ageBars, colorTotal)
	drawFooter(2)

	// Páginas de tabelas cruzadas
	page := 3
	for _, section := range []struct {
		Title string
		Rows  []entity.CrossTabRow
	}{
		{"Categoria", summary.ByCategory},
		{"País", summary.ByCountry},
		{"Estados (BR)", summary.ByState},
	} {
		pdf.AddPage()
		drawSectionTitle(section.Title)
		drawCrossTab(pdf, tr, section.Rows)
		drawFooter(page)
		page++
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// drawKPITiles desenha as quatro tiles coloridas de KPI.
func drawKPITiles(pdf *gofpdf.Fpdf, tr func(string) string, summary *entity.Summary) {
	tiles := []struct {
		Label string
		Value int
		Color [3]int
	}{
		{"TOTAL", summary.TotalCount, colorTotal},
		{"PAGOS", summary.PaidCount, colorPaid},
		{"CORTESIAS", summary.CourtesyCount, colorCourtesy},
		{"ABERTO", summary.OpenCount, colorOpen},
	}

	const tileWidth, tileHeight, gap = 44.0, 24.0, 4.0
	x := pdf.GetX()
	y := pdf.GetY()
	for i, tile := range tiles {
		tileX := x + float64(i)*(tileWidth+gap)
		pdf.SetFillColor(tile.Color[0], tile.Color[1], tile.Color[2])
		pdf.Rect(tileX, y, tileWidth, tileHeight, "F")

		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Arial", "B", 8)
		pdf.SetXY(tileX, y+3)
		pdf.CellFormat(tileWidth, 4, tr(tile.Label), "", 0, "C", false, 0, "")
		pdf.SetFont("Arial", "B", 20)
		pdf.SetXY(tileX, y+9)
		pdf.CellFormat(tileWidth, 12, strconv.Itoa(tile.Value), "", 0, "C", false, 0, "")
	}
	pdf.SetXY(x, y+tileHeight)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
}

// drawWeeklyChart desenha a série semanal como polilinhas por status,
// com os rótulos incrementais de dia/mês/ano nos ticks.
func drawWeeklyChart(pdf *gofpdf.Fpdf, tr func(string) string, summary *entity.Summary) {
	const chartX, chartWidth, chartHeight = 15.0, 175.0, 60.0
	chartY := pdf.GetY() + 2

	if len(summary.Weekly) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 8, tr("Sem datas válidas para a série semanal."), "", 1, "L", false, 0, "")
		return
	}

	maxCount := 1
	for _, week := range summary.Weekly {
		for _, v := range []int{week.Paid, week.Courtesy, week.Open} {
			if v > maxCount {
				maxCount = v
			}
		}
	}

	// Moldura e linha de base
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Rect(chartX, chartY, chartWidth, chartHeight, "D")

	pointX := func(i int) float64 {
		if len(summary.Weekly) == 1 {
			return chartX + chartWidth/2
		}
		return chartX + chartWidth*float64(i)/float64(len(summary.Weekly)-1)
	}
	pointY := func(count int) float64 {
		return chartY + chartHeight - chartHeight*float64(count)/float64(maxCount)
	}

	series := []struct {
		Color [3]int
		Value func(entity.WeeklyCount) int
	}{
		{colorPaid, func(w entity.WeeklyCount) int { return w.Paid }},
		{colorCourtesy, func(w entity.WeeklyCount) int { return w.Courtesy }},
		{colorOpen, func(w entity.WeeklyCount) int { return w.Open }},
	}
	pdf.SetLineWidth(0.5)
	for _, s := range series {
		pdf.SetDrawColor(s.Color[0], s.Color[1], s.Color[2])
		for i := 1; i < len(summary.Weekly); i++ {
			pdf.Line(pointX(i-1), pointY(s.Value(summary.Weekly[i-1])), pointX(i), pointY(s.Value(summary.Weekly[i])))
		}
	}
	pdf.SetLineWidth(0.2)

	// Ticks
	pdf.SetFont("Arial", "", 6)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for i, label := range summary.WeekLabels {
		pdf.SetXY(pointX(i)-9, chartY+chartHeight+1)
		pdf.CellFormat(18, 4, tr(label), "", 0, "C", false, 0, "")
	}

	// Legenda
	legendY := chartY + chartHeight + 7
	legendX := chartX
	for _, item := range []struct {
		Label string
		Color [3]int
	}{{"Pagos", colorPaid}, {"Cortesias", colorCourtesy}, {"Aberto", colorOpen}} {
		pdf.SetFillColor(item.Color[0], item.Color[1], item.Color[2])
		pdf.Rect(legendX, legendY, 3, 3, "F")
		pdf.SetXY(legendX+4, legendY-1)
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(20, 5, tr(item.Label), "", 0, "L", false, 0, "")
		legendX += 28
	}
	pdf.SetY(legendY + 8)
}

// barRow é uma barra horizontal com rótulo e anotação opcional.
type barRow struct {
	Label string
	Count int
	Note  string
}

func drawBarList(pdf *gofpdf.Fpdf, tr func(string) string, bars []barRow, color [3]int) {
	if len(bars) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 8, tr("Sem dados."), "", 1, "L", false, 0, "")
		return
	}
	maxCount := 1
	for _, bar := range bars {
		if bar.Count > maxCount {
			maxCount = bar.Count
		}
	}

	const labelWidth, barMax = 50.0, 110.0
	for _, bar := range bars {
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(labelWidth, 6, tr(bar.Label), "", 0, "L", false, 0, "")

		width := barMax * float64(bar.Count) / float64(maxCount)
		pdf.SetFillColor(color[0], color[1], color[2])
		pdf.Rect(pdf.GetX(), pdf.GetY()+1, width, 4, "F")

		note := strconv.Itoa(bar.Count)
		if bar.Note != "" {
			note = fmt.Sprintf("%d (%s)", bar.Count, bar.Note)
		}
		pdf.SetXY(pdf.GetX()+width+2, pdf.GetY())
		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(25, 6, tr(note), "", 1, "L", false, 0, "")
	}
}

// drawCrossTab desenha uma tabela campo × status com a coluna Total,
// cores por status como no relatório original.
func drawCrossTab(pdf *gofpdf.Fpdf, tr func(string) string, rows []entity.CrossTabRow) {
	if len(rows) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 8, tr("Sem dados."), "", 1, "L", false, 0, "")
		return
	}

	const labelWidth, countWidth = 90.0, 25.0

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(248, 249, 250)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(labelWidth, 7, tr("Nome"), "B", 0, "L", true, 0, "")
	pdf.CellFormat(countWidth, 7, tr("Total"), "B", 0, "R", true, 0, "")
	pdf.CellFormat(countWidth, 7, tr("Pagos"), "B", 0, "R", true, 0, "")
	pdf.CellFormat(countWidth, 7, tr("Cort."), "B", 0, "R", true, 0, "")
	pdf.CellFormat(countWidth, 7, tr("Aberto"), "B", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		if pdf.GetY() > 265 {
			pdf.AddPage()
		}
		label := row.Label
		if runes := []rune(label); len(runes) > 40 {
			label = string(runes[:40])
		}
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(labelWidth, 6, tr(label), "B", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(countWidth, 6, strconv.Itoa(row.Total), "B", 0, "R", false, 0, "")
		pdf.SetTextColor(colorPaid[0], colorPaid[1], colorPaid[2])
		pdf.CellFormat(countWidth, 6, strconv.Itoa(row.Paid), "B", 0, "R", false, 0, "")
		pdf.SetTextColor(colorCourtesy[0], colorCourtesy[1], colorCourtesy[2])
		pdf.CellFormat(countWidth, 6, strconv.Itoa(row.Courtesy), "B", 0, "R", false, 0, "")
		pdf.SetTextColor(colorOpen[0], colorOpen[1], colorOpen[2])
		pdf.CellFormat(countWidth, 6, strconv.Itoa(row.Open), "B", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 9)
	}
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
}

// generateReportFilename monta o nome determinístico do artefato
// (Relatorio_<EVENTO>_<ANO>.<ext>, espaços viram underscores) e garante
// que o diretório exista.
func generateReportFilename(summary *entity.Summary, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	event := strings.ReplaceAll(strings.TrimSpace(summary.Event), " ", "_")
	year := strings.ReplaceAll(strings.TrimSpace(summary.Year), " ", "_")
	filename := fmt.Sprintf("Relatorio_%s_%s.%s", event, year, ext)
	return filepath.Join(dir, filename), nil
}
