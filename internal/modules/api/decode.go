package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Decoding is strict on types and enum membership but permissive on optional
// fields: absent optionals keep their zero value, defaultable fields take
// their default, unknown keys are ignored, and an explicit JSON null counts
// as a type violation. Every violation in a payload is collected before the
// decoder fails, so a ValidationError names all offending field paths at once.

var (
	productStatuses = []string{string(ProductDraft), string(ProductActive), string(ProductArchived)}
	orderStatuses   = []string{string(OrderPending), string(OrderProcessing), string(OrderFulfilled), string(OrderCancelled)}
)

func decodeHealth(data []byte) (HealthResponse, error) {
	fe := &fieldErrors{}
	obj, ok := decodeObject(data, "", fe)
	if !ok {
		return HealthResponse{}, fe.err()
	}
	h := HealthResponse{
		Status:       requireString(obj, "", "status", fe),
		Version:      optionalString(obj, "", "version", fe),
		Uptime:       optionalString(obj, "", "uptime", fe),
		Dependencies: optionalStringMap(obj, "", "dependencies", fe),
	}
	if err := fe.err(); err != nil {
		return HealthResponse{}, err
	}
	return h, nil
}

func decodeProduct(data []byte) (Product, error) {
	fe := &fieldErrors{}
	obj, ok := decodeObject(data, "", fe)
	if !ok {
		return Product{}, fe.err()
	}
	p := decodeProductAt(obj, "", fe)
	if err := fe.err(); err != nil {
		return Product{}, err
	}
	return p, nil
}

func decodeProducts(data []byte) ([]Product, error) {
	fe := &fieldErrors{}
	elems, ok := decodeArray(data, "", fe)
	if !ok {
		return nil, fe.err()
	}
	products := make([]Product, 0, len(elems))
	for i, elem := range elems {
		path := fmt.Sprintf("[%d]", i)
		obj, ok := decodeObject(elem, path, fe)
		if !ok {
			continue
		}
		products = append(products, decodeProductAt(obj, path, fe))
	}
	if err := fe.err(); err != nil {
		return nil, err
	}
	return products, nil
}

func decodeOrders(data []byte) ([]Order, error) {
	fe := &fieldErrors{}
	elems, ok := decodeArray(data, "", fe)
	if !ok {
		return nil, fe.err()
	}
	orders := make([]Order, 0, len(elems))
	for i, elem := range elems {
		path := fmt.Sprintf("[%d]", i)
		obj, ok := decodeObject(elem, path, fe)
		if !ok {
			continue
		}
		orders = append(orders, decodeOrderAt(obj, path, fe))
	}
	if err := fe.err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func decodeProductAt(obj map[string]json.RawMessage, path string, fe *fieldErrors) Product {
	return Product{
		ID:          requireString(obj, path, "id", fe),
		Name:        requireString(obj, path, "name", fe),
		Description: stringDefault(obj, path, "description", "", fe),
		Price:       requireNumber(obj, path, "price", fe),
		Currency:    stringDefault(obj, path, "currency", "USD", fe),
		Status:      ProductStatus(optionalEnum(obj, path, "status", productStatuses, fe)),
		Stock:       optionalNonNegInt(obj, path, "stock", fe),
		Tags:        optionalStringSlice(obj, path, "tags", fe),
		CreatedAt:   optionalString(obj, path, "createdAt", fe),
		UpdatedAt:   optionalString(obj, path, "updatedAt", fe),
	}
}

func decodeOrderAt(obj map[string]json.RawMessage, path string, fe *fieldErrors) Order {
	o := Order{
		ID:        requireString(obj, path, "id", fe),
		UserID:    requireString(obj, path, "userId", fe),
		Status:    OrderStatus(requireEnum(obj, path, "status", orderStatuses, fe)),
		Total:     requireNumber(obj, path, "total", fe),
		Currency:  stringDefault(obj, path, "currency", "USD", fe),
		CreatedAt: requireString(obj, path, "createdAt", fe),
		UpdatedAt: optionalString(obj, path, "updatedAt", fe),
		LineItems: []OrderLineItem{},
	}

	itemsPath := joinPath(path, "lineItems")
	raw, present := obj["lineItems"]
	if !present {
		return o
	}
	elems, ok := decodeArray(raw, itemsPath, fe)
	if !ok {
		return o
	}
	for i, elem := range elems {
		elemPath := fmt.Sprintf("%s[%d]", itemsPath, i)
		itemObj, ok := decodeObject(elem, elemPath, fe)
		if !ok {
			continue
		}
		o.LineItems = append(o.LineItems, OrderLineItem{
			ProductID: requireString(itemObj, elemPath, "productId", fe),
			Name:      requireString(itemObj, elemPath, "name", fe),
			Quantity:  requireNonNegInt(itemObj, elemPath, "quantity", fe),
			Price:     requireNumber(itemObj, elemPath, "price", fe),
			Currency:  stringDefault(itemObj, elemPath, "currency", "USD", fe),
		})
	}
	return o
}

// ── field plumbing ────────────────────────────────────────────────────────────

type fieldErrors struct {
	fields []string
}

func (fe *fieldErrors) add(path, msg string) {
	if path == "" {
		fe.fields = append(fe.fields, msg)
		return
	}
	fe.fields = append(fe.fields, path+": "+msg)
}

func (fe *fieldErrors) err() error {
	if len(fe.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe.fields}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeObject(data json.RawMessage, path string, fe *fieldErrors) (map[string]json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if isNull(data) || json.Unmarshal(data, &obj) != nil {
		fe.add(path, "expected object")
		return nil, false
	}
	return obj, true
}

func decodeArray(data json.RawMessage, path string, fe *fieldErrors) ([]json.RawMessage, bool) {
	var elems []json.RawMessage
	if isNull(data) || json.Unmarshal(data, &elems) != nil {
		fe.add(path, "expected array")
		return nil, false
	}
	return elems, true
}

func requireString(obj map[string]json.RawMessage, path, name string, fe *fieldErrors) string {
	raw, present := obj[name]
	if !present {
		fe.add(joinPath(path, name), "required")
		return ""
	}
	return decodeString(raw, joinPath(path, name), fe)
}

func optionalString(obj map[string]json.RawMessage, path, name string, fe *fieldErrors) string {
	raw, present := obj[name]
	if !present {
		return ""
	}
	return decodeString(raw, joinPath(path, name), fe)
}

func stringDefault(obj map[string]json.RawMessage, path, name, def string, fe *fieldErrors) string {
	raw, present := obj[name]
	if !present {
		return def
	}
	return decodeString(raw, joinPath(path, name), fe)
}

func decodeString(raw json.RawMessage, path string, fe *fieldErrors) string {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		fe.add(path, "expected string")
		return ""
	}
	return s
}

func requireEnum(obj map[string]json.RawMessage, path, name string, allowed []string, fe *fieldErrors) string {
	raw, present := obj[name]
	if !present {
		fe.add(joinPath(path, name), "required")
		return ""
	}
	return decodeEnum(raw, joinPath(path, name), allowed, fe)
}

func optionalEnum(obj map[string]json.RawMessage, path, name string, allowed []string, fe *fieldErrors) string {
	raw, present := obj[name]
	if !present {
		return ""
	}
	return decodeEnum(raw, joinPath(path, name), allowed, fe)
}

func decodeEnum(raw json.RawMessage, path string, allowed []string, fe *fieldErrors) string {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		fe.add(path, "expected string")
		return ""
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	fe.add(path, fmt.Sprintf("%q is not one of %v", s, allowed))
	return ""
}

func requireNumber(obj map[string]json.RawMessage, path, name string, fe *fieldErrors) decimal.Decimal {
	raw, present := obj[name]
	if !present {
		fe.add(joinPath(path, name), "required")
		return decimal.Zero
	}
	var n json.Number
	if isNull(raw) || json.Unmarshal(raw, &n) != nil {
		fe.add(joinPath(path, name), "expected number")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		fe.add(joinPath(path, name), "expected number")
		return decimal.Zero
	}
	return d
}

func requireNonNegInt(obj map[string]json.RawMessage, path, name string, fe *fieldErrors) int {
	raw, present := obj[name]
	if !present {
		fe.add(joinPath(path, name), "required")
		return 0
	}
	n, ok := decodeNonNegInt(raw, joinPath(path, name), fe)
	if !ok {
		return 0
	}
	return n
}

func optionalNonNegInt(obj map[string]json.RawMessage, path, name string, fe *fieldErrors) *int {
	raw, present := obj[name]
	if !present {
		return nil
	}
	n, ok := decodeNonNegInt(raw, joinPath(path, name), fe)
	if !ok {
		return nil
	}
	return &n
}

func decodeNonNegInt(raw json.RawMessage, path string, fe *fieldErrors) (int, bool) {
	var n json.Number
	if isNull(raw) || json.Unmarshal(raw, &n) != nil {
		fe.add(path, "expected integer")
		return 0, false
	}
	v, err := n.Int64()
	if err != nil {
		fe.add(path, "expected integer")
		return 0, false
	}
	if v < 0 {
		fe.add(path, "must not be negative")
		return 0, false
	}
	return int(v), true
}

func optionalStringSlice(obj map[string]json.RawMessage, path, name string, fe *fieldErrors) []string {
	raw, present := obj[name]
	if !present {
		return nil
	}
	elems, ok := decodeArray(raw, joinPath(path, name), fe)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(elems))
	for i, elem := range elems {
		out = append(out, decodeString(elem, fmt.Sprintf("%s[%d]", joinPath(path, name), i), fe))
	}
	return out
}

func optionalStringMap(obj map[string]json.RawMessage, path, name string, fe *fieldErrors) map[string]string {
	raw, present := obj[name]
	if !present {
		return nil
	}
	inner, ok := decodeObject(raw, joinPath(path, name), fe)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(inner))
	for key, elem := range inner {
		out[key] = decodeString(elem, joinPath(joinPath(path, name), key), fe)
	}
	return out
}
