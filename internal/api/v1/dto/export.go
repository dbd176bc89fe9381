package dto

// ExportQuery selects the export format and an optional status filter.
type ExportQuery struct {
	Format string `form:"format,default=xlsx" binding:"omitempty,oneof=xlsx csv json"`
	Status string `form:"status" binding:"omitempty,oneof=pending processing completed failed"`
	Limit  int    `form:"limit,default=1000" binding:"omitempty,min=1,max=10000"`
}
