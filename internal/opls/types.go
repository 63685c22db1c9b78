package opls

// Parking spot statuses.
const (
	SpotStatusOpen     = "open"
	SpotStatusReserved = "reserved"
	SpotStatusClosed   = "closed"
)

// Parking spot sizes.
const (
	VehicleTypeRegular = "regular"
	VehicleTypeLarge   = "large"
)

// Booking statuses.
const (
	BookingStatusRequested = "requested"
	BookingStatusPaid      = "paid"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
)

type Account struct {
	Uuid             string   `json:"uuid,omitempty"`
	Username         string   `json:"username"`
	Firstname        string   `json:"firstname,omitempty"`
	Lastname         string   `json:"lastname,omitempty"`
	SecurityQuestion string   `json:"securityQuestion,omitempty"`
	Claims           []string `json:"claims,omitempty"`
}

type AccountRequest struct {
	Username         string `json:"username"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Password         string `json:"password"`
	SecurityQuestion string `json:"securityQuestion"`
	SecurityAnswer   string `json:"securityAnswer"`
}

type ResetPasswordRequest struct {
	Password       string `json:"password"`
	SecurityAnswer string `json:"securityAnswer"`
}

type Customer struct {
	UserUuid          string `json:"userUuid,omitempty"`
	SavedLicensePlate string `json:"savedLicensePlate,omitempty"`
	BillingAccountId  string `json:"billingAccountId,omitempty"`
}

type Employee struct {
	Uuid            string  `json:"uuid,omitempty"`
	JobTitle        string  `json:"jobTitle"`
	Salary          float64 `json:"salary"`
	UserAccountUuid string  `json:"userAccountUUID,omitempty"`
}

type Configuration struct {
	MonthlyFee       float64 `json:"monthlyFee"`
	IncrementFee     float64 `json:"incrementFee"`
	IncrementTime    int     `json:"incrementTime"`
	MaxIncrementTime int     `json:"maxIncrementTime"`
}

type Schedule struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type ParkingSpot struct {
	Id          string `json:"id,omitempty"`
	VehicleType string `json:"vehicleType"`
	Status      string `json:"parkingSpotStatus"`
	Message     string `json:"message,omitempty"`
}

type SpotQueryRequest struct {
	Unbooked     bool     `json:"unbooked"`
	Floors       []string `json:"floors"`
	Statuses     []string `json:"statuses"`
	VehicleTypes []string `json:"vehicleTypes"`
}

type SpotQueryResponse struct {
	ParkingSpots []ParkingSpot `json:"parkingSpots"`
	Count        int           `json:"count"`
}

type SpotBookingRequest struct {
	ParkingSpotId    string `json:"parkingSpotId,omitempty"`
	CreditCardNumber string `json:"creditCardNumber"`
	Duration         int    `json:"duration,omitempty"`
	LicensePlate     string `json:"licensePlate"`
	VehicleType      string `json:"vehicleType,omitempty"`
}

type SpotBooking struct {
	Uuid               string  `json:"uuid,omitempty"`
	Status             string  `json:"status,omitempty"`
	ParkingSpotId      string  `json:"parkingSpotId,omitempty"`
	ConfirmationNumber string  `json:"confirmationNumber,omitempty"`
	StartDate          string  `json:"startDate,omitempty"`
	EndDate            string  `json:"endDate,omitempty"`
	Cost               float64 `json:"cost,omitempty"`
}

type UpdateSpotBookingRequest struct {
	CreditCardNumber string `json:"creditCardNumber,omitempty"`
	LicensePlate     string `json:"licensePlate,omitempty"`
	VehicleType      string `json:"vehicleType,omitempty"`
	Status           string `json:"status,omitempty"`
	ParkingSpotId    string `json:"parkingSpotId,omitempty"`
}

type VehicleService struct {
	Id          string  `json:"id,omitempty"`
	DisplayName string  `json:"displayName"`
	Fee         float64 `json:"fee"`
	Duration    int     `json:"duration"`
}

type ServiceBookingRequest struct {
	CreditCardNumber string `json:"creditCardNumber"`
	LicensePlate     string `json:"licensePlate"`
	StartDate        string `json:"startDate"`
}

type ServiceBooking struct {
	Uuid               string  `json:"uuid,omitempty"`
	Status             string  `json:"status,omitempty"`
	ConfirmationNumber string  `json:"confirmationNumber,omitempty"`
	StartDate          string  `json:"startDate,omitempty"`
	EndDate            string  `json:"endDate,omitempty"`
	Cost               float64 `json:"cost,omitempty"`
	VehicleServiceId   string  `json:"vehicleServiceId,omitempty"`
	LicensePlate       string  `json:"licensePlate,omitempty"`
	CreditCardNumber   string  `json:"creditCardNumber,omitempty"`
}

type ServiceBookingQueryRequest struct {
	QueryOwn          bool     `json:"queryOwn"`
	VehicleServiceIds []string `json:"vehicleServiceIds"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type ServiceBookingQueryResponse struct {
	Bookings []DateRange `json:"bookings"`
	Count    int         `json:"count"`
}

type UpdateServiceBookingRequest struct {
	LicensePlate  string `json:"licensePlate,omitempty"`
	BookingStatus string `json:"bookingStatus,omitempty"`
}
