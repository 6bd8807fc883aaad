package contextkeys

// contextKey is private so no other package can collide with these keys.
type contextKey string

// DBContextKey is the gin.Context key (as a string) holding the request's *gorm.DB.
const DBContextKey = contextKey("db")
