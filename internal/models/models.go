package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// BlockSource is one authored content block as delivered by the document
// conversion pipeline: the block type plus the raw table-like HTML subtree.
type BlockSource struct {
	Type string `json:"type"`
	HTML string `json:"html"`
}

type BlockSources []BlockSource

func (bs *BlockSources) Scan(value interface{}) error {
	if value == nil {
		*bs = BlockSources{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan BlockSources")
	}

	return json.Unmarshal(bytes, bs)
}

func (bs BlockSources) Value() (driver.Value, error) {
	if len(bs) == 0 {
		return nil, nil
	}
	return json.Marshal(bs)
}

// Page is a stored authored document: an ordered list of block sources that
// get decorated on read.
type Page struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UUID      string         `gorm:"uniqueIndex;not null" json:"uuid"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string       `gorm:"not null" json:"title"`
	Slug        string       `gorm:"uniqueIndex;not null" json:"slug"`
	Description string       `json:"description"`
	Published   bool         `gorm:"default:false" json:"published"`
	Blocks      BlockSources `gorm:"type:jsonb" json:"blocks"`

	Order int `gorm:"default:0" json:"order"`
}

type CreatePageRequest struct {
	Title       string        `json:"title" binding:"required,no_html"`
	Slug        string        `json:"slug" binding:"omitempty,slug"`
	Description string        `json:"description" binding:"omitempty,no_html"`
	Published   bool          `json:"published"`
	Blocks      []BlockSource `json:"blocks"`
}

type UpdatePageRequest struct {
	Title       *string        `json:"title" binding:"omitempty,no_html"`
	Slug        *string        `json:"slug" binding:"omitempty,slug"`
	Description *string        `json:"description" binding:"omitempty,no_html"`
	Published   *bool          `json:"published"`
	Blocks      *[]BlockSource `json:"blocks"`
}

// DecoratedBlock is the rendered form of one block: final markup plus the
// behavior hooks the client runtime should attach to it.
type DecoratedBlock struct {
	Type  string   `json:"type"`
	HTML  string   `json:"html"`
	Hooks []string `json:"hooks,omitempty"`
}

// DecoratedPage is a stored page with every block rendered.
type DecoratedPage struct {
	Page   Page             `json:"page"`
	Blocks []DecoratedBlock `json:"blocks"`
}

// SpecEntry is one row of the remote specification dataset. Each entry spans
// two columns of the rendered table.
type SpecEntry struct {
	LeftLabel  string `json:"leftLabel"`
	LeftValue  string `json:"leftValue"`
	RightLabel string `json:"rightLabel"`
	RightValue string `json:"rightValue"`
}

// Product is the remote product dataset for one SKU.
type Product struct {
	SKU           string   `json:"sku"`
	Name          string   `json:"name"`
	Price         string   `json:"price"`
	Description   string   `json:"description"`
	GalleryImages []string `json:"galleryImages"`
	Breadcrumb    []string `json:"breadcrumb"`
}
