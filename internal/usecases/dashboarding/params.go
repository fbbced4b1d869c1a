package dashboarding

import (
	"strings"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
)

type DeviceMetric string

const (
	DeviceClicks      DeviceMetric = "clicks"
	DeviceImpressions DeviceMetric = "impressions"
	DeviceConversions DeviceMetric = "conversions"
	DeviceSpend       DeviceMetric = "spend"
	DeviceRevenue     DeviceMetric = "revenue"

	// taxas em porcentagem
	DeviceCTR            DeviceMetric = "ctr"
	DeviceConversionRate DeviceMetric = "conversion_rate"
)

type RegionMetric string

const (
	RegionRevenue RegionMetric = "revenue"
	RegionSpend   RegionMetric = "spend"
)

func invalidParam(err error, value string) error {
	return NewDashboardError(err, apiErrors.ErrInvalidRequest, err.Error()+": "+value)
}

// ParseDeviceMetric aceita valores sem diferenciar maiúsculas; vazio vira clicks
func ParseDeviceMetric(raw string) (DeviceMetric, error) {
	switch m := DeviceMetric(strings.ToLower(strings.TrimSpace(raw))); m {
	case "":
		return DeviceClicks, nil
	case DeviceClicks, DeviceImpressions, DeviceConversions, DeviceSpend, DeviceRevenue, DeviceCTR, DeviceConversionRate:
		return m, nil
	default:
		return "", invalidParam(ErrInvalidMetric, raw)
	}
}

// ParseRegionMetric aceita revenue ou spend; vazio vira revenue
func ParseRegionMetric(raw string) (RegionMetric, error) {
	switch m := RegionMetric(strings.ToLower(strings.TrimSpace(raw))); m {
	case "":
		return RegionRevenue, nil
	case RegionRevenue, RegionSpend:
		return m, nil
	default:
		return "", invalidParam(ErrInvalidMetric, raw)
	}
}

func ParseChartKind(raw string) (domain.ChartKind, error) {
	switch k := domain.ChartKind(strings.ToLower(strings.TrimSpace(raw))); k {
	case "":
		return domain.ChartLine, nil
	case domain.ChartLine, domain.ChartBar:
		return k, nil
	default:
		return "", invalidParam(ErrInvalidChartKind, raw)
	}
}
