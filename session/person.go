package session

import "fmt"

// Person is an entry of the add-person collection. ID is assigned by the
// session and never reused.
type Person struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Age      float64 `json:"age"`
	Email    string  `json:"email"`
	Gender   string  `json:"gender"`
}

func (p Person) String() string {
	return fmt.Sprintf("#%d %s (%g, %s, %s)", p.ID, p.Username, p.Age, p.Email, p.Gender)
}

// collection is the insertion-ordered person list.
type collection struct {
	items  []Person
	lastID int
}

// nextID returns a strictly increasing id starting at 1.
func (c *collection) nextID() int {
	c.lastID++
	return c.lastID
}

func (c *collection) add(p Person) {
	c.items = append(c.items, p)
}

// remove deletes the entry with id and reports whether one existed.
func (c *collection) remove(id int) bool {
	for i, p := range c.items {
		if p.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *collection) snapshot() []Person {
	return append([]Person{}, c.items...)
}
