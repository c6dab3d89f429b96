package models

// Item is a validated item. Any Item produced by validation has a non-empty Name,
// Price > 0, a Description of at most 300 characters and a non-nil Tags slice.
type Item struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Tax         *float64 `json:"tax"`
	Tags        []string `json:"tags"`
}

// FakeItem is an entry of the read-only demo list served by the listing endpoint.
type FakeItem struct {
	ItemName string `json:"item_name"`
}

// FakeItemsDB is the fixed demo list. Treat it as read-only.
var FakeItemsDB = []FakeItem{
	{ItemName: "Foo"},
	{ItemName: "Bar"},
	{ItemName: "Baz"},
}
