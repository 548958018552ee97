package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTableNameIsDistinctFromLabel(t *testing.T) {
	// The gorm table name and the per-order dining table label are
	// separate things; the label still serializes as "table_name".
	assert.Equal(t, "orders", Order{}.TableName())

	order := Order{
		ID:         uuid.New(),
		OrderNo:    "ORD-AB12CD34",
		TableLabel: "Bar 7",
		OpenedAt:   time.Now(),
	}
	data, err := json.Marshal(order)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Bar 7", decoded["table_name"])

	var back Order
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "Bar 7", back.TableLabel)
}

func TestOrderChannelLabel(t *testing.T) {
	order := &Order{TableLabel: "Patio 2"}
	assert.Equal(t, "Patio 2", order.ChannelLabel())

	order.TableLabel = ""
	assert.Equal(t, "Delivery", order.ChannelLabel())
}

func TestOrderJSONAmountsInMajorUnits(t *testing.T) {
	order := Order{
		ID:       uuid.New(),
		OrderNo:  "ORD-AB12CD34",
		SubTotal: 20000,
		Tax:      1500,
		Discount: 2000,
		Total:    19500,
		OpenedAt: time.Now(),
	}
	data, err := json.Marshal(order)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 200.0, decoded["sub_total"])
	assert.Equal(t, 15.0, decoded["tax"])
	assert.Equal(t, 20.0, decoded["discount"])
	assert.Equal(t, 195.0, decoded["total"])

	var back Order
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, int64(19500), back.Total)
	assert.Equal(t, int64(2000), back.Discount)
}
