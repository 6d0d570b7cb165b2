package domain

// Driver represents a registered driver. A driver may own at most one
// accounting sub-account, created lazily by the chart of accounts.
type Driver struct {
	DriverID  string `json:"driverID"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"licenseNo"`
	Notes     string `json:"notes"`
	AuditFields
}
