package exporting

import (
	"errors"
	"sort"
	"time"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary      = "Resumo"
	SheetDemographics = "Demografia"
	SheetDevices      = "Dispositivos"
	SheetRegions      = "Regioes"
	SheetWeeks        = "Semanas"

	defaultSheet = "Sheet1"
	ContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ErrNilSnapshot = errors.New("snapshot is required to build the workbook")

type sheet struct {
	name   string
	header []interface{}
	rows   [][]interface{}
}

// BuildWorkbook monta a planilha com uma aba por visão do dashboard. O
// chamador é responsável por fechar o arquivo.
func BuildWorkbook(snapshot *domain.Aggregates) (*excelize.File, error) {
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}

	sheets := []sheet{
		summarySheet(snapshot),
		demographicsSheet(snapshot.Demographics),
		devicesSheet(snapshot.Devices),
		regionsSheet(snapshot.Regions),
		weeksSheet(snapshot.Weekly),
	}

	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E0E7FF"}},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, s := range sheets {
		if err := writeSheet(f, i, s, headerStyle); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, index int, s sheet, headerStyle int) error {
	if index == 0 {
		if err := f.SetSheetName(defaultSheet, s.name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(s.name); err != nil {
		return err
	}

	if err := f.SetSheetRow(s.name, "A1", &s.header); err != nil {
		return err
	}
	if err := f.SetRowStyle(s.name, 1, 1, headerStyle); err != nil {
		return err
	}

	for i := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &s.rows[i]); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(s.header))
	if err != nil {
		return err
	}
	return f.SetColWidth(s.name, "A", lastCol, 18)
}

func round(v float64) float64 {
	return utils.RoundWithTwoDecimalPlace(v)
}

func summarySheet(snapshot *domain.Aggregates) sheet {
	o := snapshot.Overview
	return sheet{
		name:   SheetSummary,
		header: []interface{}{"Métrica", "Valor"},
		rows: [][]interface{}{
			{"Campanhas", o.Campaigns},
			{"Investimento", round(o.TotalSpend)},
			{"Receita", round(o.TotalRevenue)},
			{"ROAS", round(o.ROAS)},
			{"Impressões", o.Impressions},
			{"Cliques", o.Clicks},
			{"Conversões", o.Conversions},
			{"CTR (%)", round(o.CTR)},
			{"Taxa de conversão (%)", round(o.ConversionRate)},
			{"Snapshot", snapshot.ID},
			{"Gerado em", snapshot.GeneratedAt.Format(time.RFC3339)},
		},
	}
}

func demographicsSheet(rollup domain.DemographicRollup) sheet {
	s := sheet{
		name: SheetDemographics,
		header: []interface{}{
			"Faixa etária", "Cliques (H)", "Cliques (M)", "CTR H (%)", "CTR M (%)",
			"Total de cliques", "Participação (%)", "Investimento alocado", "Receita alocada",
		},
		rows: make([][]interface{}, 0, len(rollup.AgeGroups)),
	}

	for _, row := range rollup.AgeGroups {
		s.rows = append(s.rows, []interface{}{
			row.AgeGroup,
			row.Male.Clicks,
			row.Female.Clicks,
			round(row.Male.CTR),
			round(row.Female.CTR),
			row.TotalClicks,
			round(row.ClickShare * 100),
			round(row.AllocatedSpend),
			round(row.AllocatedRevenue),
		})
	}
	return s
}

func devicesSheet(devices []domain.DeviceSummary) sheet {
	s := sheet{
		name: SheetDevices,
		header: []interface{}{
			"Dispositivo", "Classe", "Impressões", "Cliques", "Conversões", "CTR (%)",
			"Conversão (%)", "Investimento", "Receita", "ROAS", "Tráfego (%)",
		},
		rows: make([][]interface{}, 0, len(devices)),
	}

	for _, d := range devices {
		s.rows = append(s.rows, []interface{}{
			d.Device,
			string(d.Class),
			d.Impressions,
			d.Clicks,
			d.Conversions,
			round(d.CTR),
			round(d.ConversionRate),
			round(d.Spend),
			round(d.Revenue),
			round(d.ROAS),
			round(d.PercentageOfTraffic),
		})
	}
	return s
}

// regionsSheet ordena por receita decrescente sem alterar o snapshot
func regionsSheet(regions []domain.RegionPoint) sheet {
	sorted := make([]domain.RegionPoint, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Revenue > sorted[j].Revenue
	})

	s := sheet{
		name: SheetRegions,
		header: []interface{}{
			"Região", "País", "Investimento", "Receita", "ROAS", "Latitude", "Longitude", "Coordenada conhecida",
		},
		rows: make([][]interface{}, 0, len(sorted)),
	}

	for _, r := range sorted {
		known := "não"
		if r.Resolved {
			known = "sim"
		}
		s.rows = append(s.rows, []interface{}{
			r.Region,
			r.Country,
			round(r.Spend),
			round(r.Revenue),
			round(r.ROAS),
			r.Coordinate.Lat,
			r.Coordinate.Lng,
			known,
		})
	}
	return s
}

func weeksSheet(weeks []domain.WeeklyPoint) sheet {
	s := sheet{
		name:   SheetWeeks,
		header: []interface{}{"Início", "Fim", "Investimento", "Receita", "ROAS"},
		rows:   make([][]interface{}, 0, len(weeks)),
	}

	for _, w := range weeks {
		s.rows = append(s.rows, []interface{}{
			w.WeekStart,
			w.WeekEnd,
			round(w.Spend),
			round(w.Revenue),
			round(w.ROAS),
		})
	}
	return s
}
