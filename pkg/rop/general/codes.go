package general

const (
	CodeRecordNotFound            = "record.not.found"
	CodeValueIsInvalid            = "value.is.invalid"
	CodeValueIsRequired           = "value.is.required"
	CodeInvalidLength             = "invalid.string.length"
	CodeCollectionIsTooSmall      = "collection.is.too.small"
	CodeCollectionIsTooLarge      = "collection.is.too.large"
	CodeValueIsOutOfRange         = "value.is.out.of.range"
	CodeValueMustBeGreaterThan    = "value.must.be.greater.than"
	CodeValueMustBeGreaterOrEqual = "value.must.be.greater.or.equal"
	CodeValueMustBeLessThan       = "value.must.be.less.than"
	CodeValueMustBeLessOrEqual    = "value.must.be.less.or.equal"
)
