package view

// View models passed into the HTML templates.

type Page struct {
	Title     string
	Active    string // active sidebar entry
	UserName  string
	Flash     *Flash
	RequestID string
}

type LoginForm struct {
	Username string
}

type LoginPage struct {
	Page
	Form      LoginForm
	Errors    map[string]string
	PageError string // credentials-level message, not tied to a field
	ReturnTo  string
}

type StatCard struct {
	Title string
	Value string
	Tone  string
}

type Activity struct {
	User   string
	Action string
	At     string
}

type ChartPoint struct {
	Label  string
	Sales  float64
	Orders int
}

type DashboardPage struct {
	Page
	Stats      []StatCard
	Chart      []ChartPoint
	Activities []Activity
}

// ListPage is the shared shape of every table page.
type ListPage struct {
	Page
	Table     Table
	Paginator Paginator
	Search    string
	Tab       string
	StartDate string
	EndDate   string
	Dimension string
	SyncDate  string
	BasePath  string
}

type GoodsStoreOption struct {
	GoodID   string
	GoodName string
	Selected bool
}

type UserForm struct {
	ID          string
	Username    string
	Email       string
	IsActive    bool
	GoodsStores []GoodsStoreOption
}

type UserFormPage struct {
	Page
	Form   UserForm
	Errors map[string]string
	IsEdit bool
}

type StoreDetailPage struct {
	Page
	StoreID string
	Table   Table
}
