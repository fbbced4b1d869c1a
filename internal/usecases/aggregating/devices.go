package aggregating

import (
	"sort"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// AggregateDevices consolida a performance por dispositivo usando o rótulo em
// minúsculas como chave. Investimento e receita vêm das próprias quebras.
// PercentageOfTraffic não é somado: prevalece o valor da última campanha que
// reportou o dispositivo.
func AggregateDevices(campaigns []domain.Campaign) []domain.DeviceSummary {
	index := make(map[string]int)
	devices := make([]domain.DeviceSummary, 0)

	for _, campaign := range campaigns {
		for _, perf := range campaign.DevicePerformance {
			key := domain.DeviceKey(perf.Device)

			i, exists := index[key]
			if !exists {
				i = len(devices)
				index[key] = i
				devices = append(devices, domain.DeviceSummary{
					Key:    key,
					Device: perf.Device,
					Class:  domain.ParseDeviceClass(perf.Device),
				})
			}

			device := &devices[i]
			device.Add(perf.PerformanceCounters)
			device.Spend += perf.Spend
			device.Revenue += perf.Revenue
			device.PercentageOfTraffic = perf.PercentageOfTraffic
		}
	}

	for i := range devices {
		d := &devices[i]
		d.CTR = domain.CTR(d.Clicks, d.Impressions)
		d.ConversionRate = domain.ConversionRate(d.Conversions, d.Clicks)
		d.ROAS = domain.ROAS(d.Revenue, d.Spend)
	}

	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].Clicks > devices[j].Clicks
	})

	return devices
}
