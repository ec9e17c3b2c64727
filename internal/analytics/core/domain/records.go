package domain

type ItemSales struct {
	ItemLabel string `json:"item_label"`
	Group     string `json:"group"`
	Sales     int64  `json:"sales"`
	Quantity  int64  `json:"quantity"`
}

type GroupSales struct {
	Group    string `json:"group"`
	Sales    int64  `json:"sales"`
	Quantity int64  `json:"quantity"`
}

type MonthSales struct {
	Month    string `json:"month"` // "01".."12"
	Sales    int64  `json:"sales"`
	Quantity int64  `json:"quantity"`
}

type DaySales struct {
	Day         string  `json:"day"` // "01".."31"
	AvgSales    float64 `json:"avg_sales"`
	AvgQuantity float64 `json:"avg_quantity"`
	Days        int     `json:"days"`
}

type HourSales struct {
	Hour         string  `json:"hour"`
	HourLabel    string  `json:"hour_label"`
	AvgSales     float64 `json:"avg_sales"`
	AvgQuantity  float64 `json:"avg_quantity"`
	DaysWithData int     `json:"days_with_data"`
	SumSales     int64   `json:"sum_sales"`
	SumQuantity  int64   `json:"sum_quantity"`
}

type GroupProbability struct {
	GroupLabel  string  `json:"group_label"`
	Orders      int     `json:"orders"`
	Probability float64 `json:"probability"`
}

type MonthGroupProbability struct {
	Month       int     `json:"month"`
	GroupLabel  string  `json:"group_label"`
	Orders      int     `json:"orders"`
	Probability float64 `json:"probability"`
}

type ItemProbability struct {
	ItemLabel   string  `json:"item_label"`
	Orders      int     `json:"orders"`
	Probability float64 `json:"probability"`
}

type GroupItemProbabilities struct {
	GroupCode string            `json:"group_code"`
	GroupName string            `json:"group_name"`
	Orders    int               `json:"orders"`
	Items     []ItemProbability `json:"items"`
}

type MonthProbability struct {
	Month       int     `json:"month"`
	Probability float64 `json:"probability"`
}

type ItemTrend struct {
	ItemCode string             `json:"item_code"`
	ItemName string             `json:"item_name"`
	Values   []MonthProbability `json:"values"`
}

type GroupItemTrends struct {
	GroupCode string      `json:"group_code"`
	GroupName string      `json:"group_name"`
	Items     []ItemTrend `json:"items"`
}

type FrequencyBucket struct {
	Purchases int64 `json:"purchases"`
	Customers int   `json:"customers"`
}

type SpendBucket struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}
