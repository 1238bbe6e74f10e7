package contextkeys

// Custom type so the key cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle is stored in context.
const DBContextKey = contextKey("db")
