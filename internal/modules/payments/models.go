package payments

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Payment aggregates every order created by one checkout call (one order
// per shop). It is settled as a whole: the buyer transfers the combined
// total with the payment code in the transfer note.
type Payment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Status    string    `gorm:"type:varchar(16);not null;index:ix_payments_status" json:"status"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (Payment) TableName() string { return "payments" }

// PaymentTransaction is the append-only audit log of inbound gateway
// notifications. A row is written before any matching or validation, so
// no webhook payload is ever lost.
type PaymentTransaction struct {
	ID                 int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Gateway            string         `gorm:"type:varchar(100);not null" json:"gateway"`
	TransactionDate    time.Time      `gorm:"type:datetime(3);not null" json:"transactionDate"`
	AccountNumber      *string        `gorm:"type:varchar(100)" json:"accountNumber"`
	SubAccount         *string        `gorm:"type:varchar(250)" json:"subAccount"`
	AmountIn           int64          `gorm:"not null" json:"amountIn"`
	AmountOut          int64          `gorm:"not null" json:"amountOut"`
	Accumulated        int64          `gorm:"not null" json:"accumulated"`
	Code               *string        `gorm:"type:varchar(250)" json:"code"`
	TransactionContent *string        `gorm:"type:text" json:"transactionContent"`
	ReferenceNumber    *string        `gorm:"type:varchar(255)" json:"referenceNumber"`
	Body               datatypes.JSON `gorm:"type:json" json:"-"`
	CreatedAt          time.Time      `gorm:"type:datetime(3);not null" json:"createdAt"`
}

func (PaymentTransaction) TableName() string { return "payment_transactions" }
