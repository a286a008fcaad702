package models

import (
	"time"
)

// Lifecycle states of a pedido. There are no other transitions.
const (
	OrderStatusPending   = "Pendiente"
	OrderStatusCompleted = "Completado"
)

// Accepted payment methods.
const (
	PaymentCash     = "Efectivo"
	PaymentTransfer = "Transferencia"
)

// CategoryAll is the sentinel category that selects the whole menu.
const CategoryAll = "Todas"

// Table and column names keep the Spanish schema the frontend was built against.

type User struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"           json:"id"`
	Name  string `gorm:"column:nombre;not null"             json:"nombre"`
	Email string `gorm:"column:correo;uniqueIndex;not null" json:"correo"`
}

func (User) TableName() string { return "usuario" }

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"        json:"id"`
	Name        string  `gorm:"column:nombre;not null"          json:"nombre"`
	Description *string `gorm:"column:descripcion"              json:"descripcion"`
	Price       float64 `gorm:"column:precio;not null"          json:"precio"`
	Category    string  `gorm:"column:categoria;index;not null" json:"categoria"`
}

func (Product) TableName() string { return "producto" }

type Order struct {
	ID            uint        `gorm:"primaryKey;autoIncrement"            json:"id"`
	Code          string      `gorm:"column:codigo;size:6;index;not null" json:"codigo"`
	UserID        uint        `gorm:"column:usuario_id;index;not null"    json:"usuario_id"`
	User          User        `gorm:"foreignKey:UserID"                   json:"usuario"`
	PaymentMethod string      `gorm:"column:metodo_pago;not null"         json:"metodo_pago"`
	Total         float64     `gorm:"column:total;not null"               json:"total"`
	Status        string      `gorm:"column:estado;index;not null"        json:"estado"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"detalle_pedido"`
}

func (Order) TableName() string { return "pedido" }

// OrderItem captures precio_unitario at order time so later menu price edits
// do not rewrite historical orders.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"                  json:"id"`
	OrderID   uint    `gorm:"column:pedido_id;index;not null"           json:"pedido_id"`
	ProductID uint    `gorm:"column:producto_id;not null"               json:"producto_id"`
	Product   Product `gorm:"foreignKey:ProductID"                      json:"producto"`
	Quantity  uint    `gorm:"column:cantidad;not null;check:cantidad>0" json:"cantidad"`
	Note      *string `gorm:"column:comentario"                         json:"comentario"`
	UnitPrice float64 `gorm:"column:precio_unitario;not null"           json:"precio_unitario"`
}

func (OrderItem) TableName() string { return "detalle_pedido" }

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"         json:"id"`
	UserID    uint      `gorm:"column:usuario_id;index;not null" json:"usuario_id"`
	Message   string    `gorm:"column:mensaje;not null"          json:"mensaje"`
	CreatedAt time.Time `gorm:"column:fecha;not null"            json:"fecha"`
}

func (Comment) TableName() string { return "comentario" }

type Admin struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"           json:"id"`
	Name         string `gorm:"column:nombre;not null"             json:"nombre"`
	Email        string `gorm:"column:correo;uniqueIndex;not null" json:"correo"`
	PasswordHash string `gorm:"column:password;not null"           json:"-"`
}

func (Admin) TableName() string { return "admin" }

// PaymentMethod rows are reference data describing bank-transfer details.
type PaymentMethod struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"           json:"id"`
	Method        string  `gorm:"column:metodo;uniqueIndex;not null" json:"metodo"`
	Bank          *string `gorm:"column:banco"                       json:"banco"`
	AccountHolder *string `gorm:"column:nombre_titular"              json:"nombre_titular"`
	AccountNumber *string `gorm:"column:numero_cuenta"               json:"numero_cuenta"`
}

func (PaymentMethod) TableName() string { return "metodo_pago" }
