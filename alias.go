package dbent

// Int is the conventional integer key type for auto-increment columns.
type Int = int64

// Shorthands for the common key shapes.
type (
	// KeyInt is a Key over the conventional integer key type.
	KeyInt = Key[Int]
	// KeyString is a Key over string identifiers.
	KeyString = Key[string]

	// EntityInt is an Entity whose record is keyed by Int.
	EntityInt[T Keyed[Int]] = Entity[Int, T]
	// EntityString is an Entity whose record is keyed by string.
	EntityString[T Keyed[string]] = Entity[string, T]
	// EntityLabelInt is an EntityLabel keyed by Int with a string label.
	EntityLabelInt[T KeyedLabeled[Int, string]] = EntityLabel[Int, T, string]
	// EntityLabelString is an EntityLabel keyed by string with a string label.
	EntityLabelString[T KeyedLabeled[string, string]] = EntityLabel[string, T, string]
)
