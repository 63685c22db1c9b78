package opls

import (
	"context"
	"net/http"
	"time"

	"github.com/opls-parking/gateway/internal/dispatch"
)

// DefaultBookingWindow is the search window applied when a booking query has
// no explicit end date.
const DefaultBookingWindow = 30 * time.Minute

// Client is the typed surface over the OPLS business endpoints. It adds no
// behavior beyond shaping requests and responses: token handling, error
// classification, and header management all live in the dispatcher.
type Client struct {
	api           *dispatch.Client
	bookingWindow time.Duration
	now           func() time.Time
}

// ClientOption modifies a Client at construction time.
type ClientOption func(*Client)

// WithBookingWindow overrides the default search window for booking queries.
func WithBookingWindow(window time.Duration) ClientOption {
	return func(c *Client) {
		c.bookingWindow = window
	}
}

// WithNow sets the clock used for default query dates (primarily for testing).
func WithNow(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient wraps an authenticated dispatcher.
func NewClient(api *dispatch.Client, options ...ClientOption) *Client {
	c := &Client{
		api:           api,
		bookingWindow: DefaultBookingWindow,
		now:           time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// ProbeAccount fetches the current account and returns its claims, serving as
// the session-detection probe.
func (c *Client) ProbeAccount(ctx context.Context) ([]string, error) {
	account, err := c.GetAccount(ctx)
	if err != nil {
		return nil, err
	}
	return account.Claims, nil
}

func (c *Client) GetAccount(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.api.Do(ctx, http.MethodGet, "/account", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) CreateAccount(ctx context.Context, req AccountRequest) (*Account, error) {
	var account Account
	if err := c.api.Do(ctx, http.MethodPost, "/account", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, req AccountRequest) (*Account, error) {
	var account Account
	if err := c.api.Do(ctx, http.MethodPut, "/account", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return c.api.Do(ctx, http.MethodPut, "/account/resetPassword", req, nil)
}

func (c *Client) UpdateSecurityQuestion(ctx context.Context, question string, answer string) error {
	body := map[string]string{
		"securityQuestion": question,
		"securityAnswer":   answer,
	}
	return c.api.Do(ctx, http.MethodPut, "/account/security", body, nil)
}

func (c *Client) GetCustomer(ctx context.Context) (*Customer, error) {
	var customer Customer
	if err := c.api.Do(ctx, http.MethodGet, "/customer", nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req Customer) (*Customer, error) {
	var customer Customer
	if err := c.api.Do(ctx, http.MethodPost, "/customer", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, req Customer) (*Customer, error) {
	var customer Customer
	if err := c.api.Do(ctx, http.MethodPatch, "/customer", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) GetConfiguration(ctx context.Context) (*Configuration, error) {
	var config Configuration
	if err := c.api.Do(ctx, http.MethodGet, "/config", nil, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Client) UpdateConfiguration(ctx context.Context, req Configuration) error {
	return c.api.Do(ctx, http.MethodPut, "/config", req, nil)
}

func (c *Client) GetSchedules(ctx context.Context) ([]Schedule, error) {
	var schedules []Schedule
	if err := c.api.Do(ctx, http.MethodGet, "/config/schedule", nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (c *Client) CreateSchedule(ctx context.Context, day string, req Schedule) error {
	return c.api.Do(ctx, http.MethodPost, "/config/schedule/"+day, req, nil)
}

func (c *Client) UpdateSchedule(ctx context.Context, day string, req Schedule) error {
	return c.api.Do(ctx, http.MethodPut, "/config/schedule/"+day, req, nil)
}

func (c *Client) DeleteSchedule(ctx context.Context, day string) error {
	return c.api.Do(ctx, http.MethodDelete, "/config/schedule/"+day, nil, nil)
}

func (c *Client) GetSpot(ctx context.Context, id string) (*ParkingSpot, error) {
	var spot ParkingSpot
	if err := c.api.Do(ctx, http.MethodGet, "/spot/"+id, nil, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

func (c *Client) CreateSpot(ctx context.Context, req ParkingSpot) (*ParkingSpot, error) {
	var spot ParkingSpot
	if err := c.api.Do(ctx, http.MethodPost, "/spot", req, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

func (c *Client) UpdateSpot(ctx context.Context, id string, req ParkingSpot) (*ParkingSpot, error) {
	var spot ParkingSpot
	if err := c.api.Do(ctx, http.MethodPut, "/spot/"+id, req, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

func (c *Client) DeleteSpot(ctx context.Context, id string) error {
	return c.api.Do(ctx, http.MethodDelete, "/spot/"+id, nil, nil)
}

func (c *Client) SearchSpots(ctx context.Context, req SpotQueryRequest) (*SpotQueryResponse, error) {
	var result SpotQueryResponse
	if err := c.api.Do(ctx, http.MethodPost, "/spot/search", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) BookSpotIncremental(ctx context.Context, req SpotBookingRequest) (*SpotBooking, error) {
	var booking SpotBooking
	if err := c.api.Do(ctx, http.MethodPost, "/spot/booking/incremental", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) BookSpotMonthly(ctx context.Context, req SpotBookingRequest) (*SpotBooking, error) {
	var booking SpotBooking
	if err := c.api.Do(ctx, http.MethodPost, "/spot/booking/monthly", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) GetSpotBooking(ctx context.Context, uuid string) (*SpotBooking, error) {
	var booking SpotBooking
	if err := c.api.Do(ctx, http.MethodGet, "/spot/booking/"+uuid, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) UpdateSpotBooking(ctx context.Context, uuid string, req UpdateSpotBookingRequest) (*SpotBooking, error) {
	var booking SpotBooking
	if err := c.api.Do(ctx, http.MethodPatch, "/spot/booking/"+uuid, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) DeleteSpotBooking(ctx context.Context, uuid string) error {
	return c.api.Do(ctx, http.MethodDelete, "/spot/booking/"+uuid, nil, nil)
}

func (c *Client) GetServices(ctx context.Context) ([]VehicleService, error) {
	var services []VehicleService
	if err := c.api.Do(ctx, http.MethodGet, "/service", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) GetService(ctx context.Context, id string) (*VehicleService, error) {
	var service VehicleService
	if err := c.api.Do(ctx, http.MethodGet, "/service/"+id, nil, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) CreateService(ctx context.Context, req VehicleService) (*VehicleService, error) {
	var service VehicleService
	if err := c.api.Do(ctx, http.MethodPost, "/service", req, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, req VehicleService) (*VehicleService, error) {
	var service VehicleService
	if err := c.api.Do(ctx, http.MethodPut, "/service/"+id, req, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.api.Do(ctx, http.MethodDelete, "/service/"+id, nil, nil)
}

func (c *Client) BookService(ctx context.Context, serviceId string, req ServiceBookingRequest) (*ServiceBooking, error) {
	if req.StartDate == "" {
		req.StartDate = DateString(c.now())
	}
	var booking ServiceBooking
	if err := c.api.Do(ctx, http.MethodPost, "/service/"+serviceId+"/booking", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// SearchServiceBookings fills in a default window ending bookingWindow after
// the start date when the query leaves the dates unset.
func (c *Client) SearchServiceBookings(ctx context.Context, req ServiceBookingQueryRequest) (*ServiceBookingQueryResponse, error) {
	if req.StartDate == "" {
		req.StartDate = DateString(c.now())
	}
	if req.EndDate == "" {
		start, err := ParseDate(req.StartDate)
		if err != nil {
			start = c.now()
		}
		req.EndDate = DateString(start.Add(c.bookingWindow))
	}
	if req.VehicleServiceIds == nil {
		req.VehicleServiceIds = []string{}
	}
	var result ServiceBookingQueryResponse
	if err := c.api.Do(ctx, http.MethodPost, "/service/booking/search", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetServiceBooking(ctx context.Context, uuid string) (*ServiceBooking, error) {
	var booking ServiceBooking
	if err := c.api.Do(ctx, http.MethodGet, "/service/booking/"+uuid, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) UpdateServiceBooking(ctx context.Context, uuid string, req UpdateServiceBookingRequest) (*ServiceBooking, error) {
	var booking ServiceBooking
	if err := c.api.Do(ctx, http.MethodPatch, "/service/booking/"+uuid, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) DeleteServiceBooking(ctx context.Context, uuid string) error {
	return c.api.Do(ctx, http.MethodDelete, "/service/booking/"+uuid, nil, nil)
}

func (c *Client) GetEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := c.api.Do(ctx, http.MethodGet, "/employee", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) GetEmployee(ctx context.Context, uuid string) (*Employee, error) {
	var employee Employee
	if err := c.api.Do(ctx, http.MethodGet, "/employee/"+uuid, nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req Employee) (*Employee, error) {
	var employee Employee
	if err := c.api.Do(ctx, http.MethodPost, "/employee", req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, uuid string, req Employee) (*Employee, error) {
	var employee Employee
	if err := c.api.Do(ctx, http.MethodPut, "/employee/"+uuid, req, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, uuid string) error {
	return c.api.Do(ctx, http.MethodDelete, "/employee/"+uuid, nil, nil)
}
