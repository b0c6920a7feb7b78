package finance

import "context"

// Money is an amount formatted per currency, as the dashboard displays it.
type Money struct {
	INR string `json:"inr"`
	USD string `json:"usd"`
}

type Project struct {
	Name    string  `json:"name"`
	Status  string  `json:"status"`
	Revenue float64 `json:"revenue"`
}

type Alert struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Metrics is the finance block of the dashboard. Figures come from the
// finance system of record, not from the employee store.
type Metrics struct {
	Revenue        Money              `json:"revenue"`
	Profit         Money              `json:"profit"`
	Utilization    float64            `json:"utilization"`
	ActiveProjects []Project          `json:"activeProjects"`
	Alerts         []Alert            `json:"alerts"`
	CurrencyRates  map[string]float64 `json:"currencyRates"`
}

//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock
type MetricsProvider interface {
	Metrics(ctx context.Context) (Metrics, error)
}

// StaticProvider serves fixed reference figures until the finance system
// integration lands. TODO: replace with the ERP feed once its API is stable.
type StaticProvider struct{}

func NewStaticProvider() StaticProvider {
	return StaticProvider{}
}

func (StaticProvider) Metrics(_ context.Context) (Metrics, error) {
	return Metrics{
		Revenue: Money{
			INR: "5,41,12,500",
			USD: "650,000",
		},
		Profit: Money{
			INR: "1,24,87,500",
			USD: "150,000",
		},
		Utilization: 77.5,
		ActiveProjects: []Project{
			{Name: "Project Alpha", Status: "active", Revenue: 130000},
			{Name: "Project Beta", Status: "active", Revenue: 20000},
		},
		Alerts: []Alert{
			{Severity: "warning", Message: "2 projects are nearing budget limits"},
			{Severity: "info", Message: "Quarterly utilization review due next week"},
		},
		CurrencyRates: map[string]float64{
			"USD_INR": 83.25,
			"EUR_INR": 90.15,
			"GBP_INR": 105.50,
		},
	}, nil
}
