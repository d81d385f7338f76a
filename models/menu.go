package models

// Ingredient is one line of a menu item's recipe. Ingredients have no
// identity of their own and are addressed by position.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// MenuItem is a single line on a restaurant's menu. The id is chosen by
// the restaurant and must be unique within the menu. The item's
// position in the menu slice doubles as its catalog position for the
// forecast feature encoding, so reordering the menu invalidates a
// trained model.
type MenuItem struct {
	ID          string       `json:"item_id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Restaurant holds one account's location and menu. Stored as a single
// document per account.
type Restaurant struct {
	UserID   string     `json:"user_id"`
	Location string     `json:"location"`
	Menu     []MenuItem `json:"menu"`
}

// AddItem appends a menu item. Fails when the id is already taken.
func (r *Restaurant) AddItem(id, name string) bool {
	for _, item := range r.Menu {
		if item.ID == id {
			return false
		}
	}
	r.Menu = append(r.Menu, MenuItem{ID: id, Name: name})
	return true
}

// ModifyItem renames the item currently known as oldID. Fails when the
// item is absent or the new id would collide with another item.
func (r *Restaurant) ModifyItem(oldID, newID, name string) bool {
	if oldID != newID {
		for _, item := range r.Menu {
			if item.ID == newID {
				return false
			}
		}
	}
	for i := range r.Menu {
		if r.Menu[i].ID == oldID {
			r.Menu[i].ID = newID
			r.Menu[i].Name = name
			return true
		}
	}
	return false
}

// RemoveItem deletes the menu item with the given id.
func (r *Restaurant) RemoveItem(id string) bool {
	for i, item := range r.Menu {
		if item.ID == id {
			r.Menu = append(r.Menu[:i], r.Menu[i+1:]...)
			return true
		}
	}
	return false
}

// Item returns the menu item with the given id.
func (r *Restaurant) Item(id string) (*MenuItem, bool) {
	for i := range r.Menu {
		if r.Menu[i].ID == id {
			return &r.Menu[i], true
		}
	}
	return nil, false
}

// ItemIDs lists every menu item id in catalog order.
func (r *Restaurant) ItemIDs() []string {
	ids := make([]string, 0, len(r.Menu))
	for _, item := range r.Menu {
		ids = append(ids, item.ID)
	}
	return ids
}

// AddIngredient appends an ingredient to the named item. Fails when the
// item is absent or the item already has an ingredient with that name.
func (r *Restaurant) AddIngredient(itemID, name string, quantity float64, unit string) bool {
	item, ok := r.Item(itemID)
	if !ok {
		return false
	}
	for _, ing := range item.Ingredients {
		if ing.Name == name {
			return false
		}
	}
	item.Ingredients = append(item.Ingredients, Ingredient{Name: name, Quantity: quantity, Unit: unit})
	return true
}

// ModifyIngredient replaces the ingredient at the given position.
func (r *Restaurant) ModifyIngredient(itemID string, index int, name string, quantity float64, unit string) bool {
	item, ok := r.Item(itemID)
	if !ok || index < 0 || index >= len(item.Ingredients) {
		return false
	}
	item.Ingredients[index] = Ingredient{Name: name, Quantity: quantity, Unit: unit}
	return true
}

// RemoveIngredient deletes the ingredient at the given position.
func (r *Restaurant) RemoveIngredient(itemID string, index int) bool {
	item, ok := r.Item(itemID)
	if !ok || index < 0 || index >= len(item.Ingredients) {
		return false
	}
	item.Ingredients = append(item.Ingredients[:index], item.Ingredients[index+1:]...)
	return true
}
