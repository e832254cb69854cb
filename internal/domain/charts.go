package domain

// Charts served by the dashboard_stats endpoint.
const (
	ChartSessionStats = "session_stats"
	ChartTPSStats     = "tps_stats"
	ChartTIStats      = "ti_stats"
	ChartTOStats      = "to_stats"
	ChartBIOStats     = "bio_stats"
)

// Charts served by the system_statistics endpoint, backed by the system_stats extension.
const (
	ChartCPUStats     = "cpu_stats"
	ChartLoadAvgStats = "la_stats"
	ChartMemoryStats  = "m_stats"
	ChartOSStats      = "hpc_stats"
	ChartProcessStats = "pcpu_stats"
	ChartIOStats      = "io_stats"
)

const SystemStatsExtension = "system_stats"

var systemCharts = map[string]bool{
	ChartSessionStats: false,
	ChartTPSStats:     false,
	ChartTIStats:      false,
	ChartTOStats:      false,
	ChartBIOStats:     false,
	ChartCPUStats:     true,
	ChartLoadAvgStats: true,
	ChartMemoryStats:  true,
	ChartOSStats:      true,
	ChartProcessStats: true,
	ChartIOStats:      true,
}

// ChartScope reports whether a chart comes from the system_stats extension.
// known is false for names no endpoint serves.
func ChartScope(name string) (system bool, known bool) {
	system, known = systemCharts[name]
	return system, known
}
