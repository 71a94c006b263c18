package models

// Promo banner discount types
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeTaka       = "taka"
)

// Order statuses
const (
	OrderStatusAccept  = "accept"
	OrderStatusReject  = "reject"
	OrderStatusPending = "pending"
)

type ProductCategory struct {
	ID            int64     `json:"id"`
	UUID          string    `json:"uuid"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	Status        bool      `json:"status"`
	CreatedBy     *string   `json:"created_by"`
	CreatedByName *string   `json:"created_by_name,omitempty"`
	CreatedAt     DateTime  `json:"created_at"`
	UpdatedAt     *DateTime `json:"updated_at"`
	Remarks       *string   `json:"remarks"`
}

type ProductSubCategory struct {
	ID                  int64     `json:"id"`
	UUID                string    `json:"uuid"`
	ProductCategoryUUID *string   `json:"product_category_uuid"`
	ProductCategoryName *string   `json:"product_category_name,omitempty"`
	Name                string    `json:"name"`
	Image               string    `json:"image"`
	Status              bool      `json:"status"`
	CreatedBy           *string   `json:"created_by"`
	CreatedByName       *string   `json:"created_by_name,omitempty"`
	CreatedAt           DateTime  `json:"created_at"`
	UpdatedAt           *DateTime `json:"updated_at"`
	Remarks             *string   `json:"remarks"`
}

type Product struct {
	ID                     int64     `json:"id"`
	UUID                   string    `json:"uuid"`
	ProductSubCategoryUUID *string   `json:"product_sub_category_uuid"`
	ProductSubCategoryName *string   `json:"product_sub_category_name,omitempty"`
	Image                  string    `json:"image"`
	Name                   string    `json:"name"`
	Quantity               float64   `json:"quantity"`
	Unit                   string    `json:"unit"`
	Price                  float64   `json:"price"`
	Description            string    `json:"description"`
	Nutrition              string    `json:"nutrition"`
	IsPublished            bool      `json:"is_published"`
	IsVatable              bool      `json:"is_vatable"`
	IsFeatured             bool      `json:"is_featured"`
	IsPopular              bool      `json:"is_popular"`
	IsVariableWeight       bool      `json:"is_variable_weight"`
	CreatedBy              *string   `json:"created_by"`
	CreatedByName          *string   `json:"created_by_name,omitempty"`
	CreatedAt              DateTime  `json:"created_at"`
	UpdatedAt              *DateTime `json:"updated_at"`
	Remarks                *string   `json:"remarks"`
}

type Shop struct {
	ID            int64     `json:"id"`
	UUID          string    `json:"uuid"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Image         string    `json:"image"`
	CreatedBy     *string   `json:"created_by"`
	CreatedByName *string   `json:"created_by_name,omitempty"`
	CreatedAt     DateTime  `json:"created_at"`
	UpdatedAt     *DateTime `json:"updated_at"`
	Remarks       *string   `json:"remarks"`
}

type SalesPoint struct {
	ID            int64     `json:"id"`
	UUID          string    `json:"uuid"`
	ShopUUID      *string   `json:"shop_uuid"`
	ShopName      *string   `json:"shop_name,omitempty"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Details       string    `json:"details"`
	Latitude      string    `json:"latitude"`
	Longitude     string    `json:"longitude"`
	Address       string    `json:"address"`
	CreatedBy     *string   `json:"created_by"`
	CreatedByName *string   `json:"created_by_name,omitempty"`
	CreatedAt     DateTime  `json:"created_at"`
	UpdatedAt     *DateTime `json:"updated_at"`
	Remarks       *string   `json:"remarks"`
}

type ProductSalePoint struct {
	UUID           string    `json:"uuid"`
	ProductUUID    *string   `json:"product_uuid"`
	ProductName    *string   `json:"product_name,omitempty"`
	SalesPointUUID *string   `json:"sales_point_uuid"`
	SalesPointName *string   `json:"sales_point_name,omitempty"`
	CreatedBy      *string   `json:"created_by"`
	CreatedAt      DateTime  `json:"created_at"`
	UpdatedAt      *DateTime `json:"updated_at"`
	Remarks        *string   `json:"remarks"`
}

type Recipe struct {
	UUID                   string    `json:"uuid"`
	ProductSubCategoryUUID *string   `json:"product_sub_category_uuid"`
	ProductSubCategoryName *string   `json:"product_sub_category_name,omitempty"`
	Title                  string    `json:"title"`
	YoutubeURL             string    `json:"youtube_url"`
	CreatedBy              *string   `json:"created_by"`
	CreatedAt              DateTime  `json:"created_at"`
	UpdatedAt              *DateTime `json:"updated_at"`
	Remarks                *string   `json:"remarks"`
}

type PromoBanner struct {
	UUID          string    `json:"uuid"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	DiscountType  string    `json:"discount_type"`
	Discount      string    `json:"discount"`
	StartDatetime DateTime  `json:"start_datetime"`
	EndDatetime   DateTime  `json:"end_datetime"`
	CreatedBy     *string   `json:"created_by"`
	CreatedByName *string   `json:"created_by_name,omitempty"`
	CreatedAt     DateTime  `json:"created_at"`
	UpdatedAt     *DateTime `json:"updated_at"`
	Remarks       *string   `json:"remarks"`
}

type PromoBannerProduct struct {
	UUID            string    `json:"uuid"`
	PromoBannerUUID *string   `json:"promo_banner_uuid"`
	PromoBannerName *string   `json:"promo_banner_name,omitempty"`
	ProductUUID     *string   `json:"product_uuid"`
	ProductName     *string   `json:"product_name,omitempty"`
	CreatedBy       *string   `json:"created_by"`
	CreatedAt       DateTime  `json:"created_at"`
	UpdatedAt       *DateTime `json:"updated_at"`
	Remarks         *string   `json:"remarks"`
}

type Order struct {
	ID              int64     `json:"id"`
	UUID            string    `json:"uuid"`
	UserUUID        *string   `json:"user_uuid"`
	UserName        *string   `json:"user_name,omitempty"`
	DeliveryAddress string    `json:"delivery_address"`
	PaymentMethod   string    `json:"payment_method"`
	Status          string    `json:"status"`
	IsDelivered     bool      `json:"is_delivered"`
	CreatedBy       *string   `json:"created_by"`
	CreatedByName   *string   `json:"created_by_name,omitempty"`
	CreatedAt       DateTime  `json:"created_at"`
	UpdatedAt       *DateTime `json:"updated_at"`
	Remarks         *string   `json:"remarks"`

	// Populated on single-order lookups only
	Products []*OrderProduct `json:"order_product,omitempty"`
}

type OrderProduct struct {
	UUID        string    `json:"uuid"`
	OrderUUID   *string   `json:"order_uuid"`
	ProductUUID *string   `json:"product_uuid"`
	ProductName *string   `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
	IsVatable   bool      `json:"is_vatable"`
	Price       float64   `json:"price"`
	CreatedAt   DateTime  `json:"created_at"`
	UpdatedAt   *DateTime `json:"updated_at"`
	Remarks     *string   `json:"remarks"`
}

type Testimonial struct {
	UUID          string    `json:"uuid"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	CreatedBy     *string   `json:"created_by"`
	CreatedByName *string   `json:"created_by_name,omitempty"`
	CreatedAt     DateTime  `json:"created_at"`
	UpdatedAt     *DateTime `json:"updated_at"`
	Remarks       *string   `json:"remarks"`
}

// ContactMessage is keyed by its serial id; it is the only resource without
// a uuid column.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt DateTime  `json:"created_at"`
	UpdatedAt *DateTime `json:"updated_at"`
	Remarks   *string   `json:"remarks"`
}
