package dto

// SimulationRequest is the DTO for a Monte Carlo run.
type SimulationRequest struct {
	StartingEquity float64 `json:"starting_equity"`
	WinRate        float64 `json:"win_rate"`
	AvgWin         float64 `json:"avg_win"`
	AvgLoss        float64 `json:"avg_loss"`
	RiskPerTrade   float64 `json:"risk_per_trade"`
	NumTrades      int     `json:"num_trades"`
	NumSimulations int     `json:"num_simulations"`
	Seed           int64   `json:"seed"`
}

// SimulationChartData holds the percentile cone per trade index.
type SimulationChartData struct {
	BestCase   []float64 `json:"best_case"`
	MedianCase []float64 `json:"median_case"`
	WorstCase  []float64 `json:"worst_case"`
}

// SimulationMetrics summarizes simulated final equities.
type SimulationMetrics struct {
	RiskOfRuin     float64 `json:"risk_of_ruin"`
	MedianEquity   float64 `json:"median_equity"`
	MinEquity      float64 `json:"min_equity"`
	MaxEquity      float64 `json:"max_equity"`
	StartingEquity float64 `json:"starting_equity"`
}

// SimulationResponse is the DTO returned by the simulation endpoint.
type SimulationResponse struct {
	ChartData SimulationChartData `json:"chart_data"`
	Metrics   SimulationMetrics   `json:"metrics"`
}
