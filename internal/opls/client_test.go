package opls

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/opls-parking/gateway/internal/dispatch"
)

type staticTokenSource struct{}

func (staticTokenSource) AccessToken(ctx context.Context) (string, error) {
	return "static-token", nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, options ...ClientOption) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(dispatch.New(srv.URL, staticTokenSource{}), options...), srv
}

func Test_Client_ProbeAccount(t *testing.T) {
	c, _ := newTestClient(t, func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/account", req.URL.Path)
		assert.Equal(t, "Bearer static-token", req.Header.Get("Authorization"))
		res.Write([]byte(`{"username":"george","claims":["CUSTOMER","EMPLOYEE"]}`))
	})

	claims, err := c.ProbeAccount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"CUSTOMER", "EMPLOYEE"}, claims)
}

func Test_Client_GetAccount(t *testing.T) {
	c, _ := newTestClient(t, func(res http.ResponseWriter, req *http.Request) {
		res.Write([]byte(`{"uuid":"u-1","username":"george","firstname":"George","lastname":"Jetson","securityQuestion":"favorite sprocket?","claims":["CUSTOMER"]}`))
	})

	account, err := c.GetAccount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "george", account.Username)
	assert.Equal(t, "George", account.Firstname)
	assert.Equal(t, []string{"CUSTOMER"}, account.Claims)
}

func Test_Client_SearchSpots(t *testing.T) {
	c, _ := newTestClient(t, func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/spot/search", req.URL.Path)

		var query SpotQueryRequest
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&query))
		assert.True(t, query.Unbooked)
		assert.Equal(t, []string{SpotStatusOpen}, query.Statuses)

		res.Write([]byte(`{"parkingSpots":[{"id":"A012","vehicleType":"regular","parkingSpotStatus":"open"}],"count":1}`))
	})

	result, err := c.SearchSpots(context.Background(), SpotQueryRequest{
		Unbooked: true,
		Statuses: []string{SpotStatusOpen},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "A012", result.ParkingSpots[0].Id)
	assert.Equal(t, VehicleTypeRegular, result.ParkingSpots[0].VehicleType)
}

func Test_Client_BookService_defaultsStartDate(t *testing.T) {
	now := time.Date(2023, 3, 15, 9, 30, 0, 0, time.Local)
	c, _ := newTestClient(t, func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/service/oil-change/booking", req.URL.Path)

		var body ServiceBookingRequest
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "2023-03-15 09:30:00.000", body.StartDate)

		res.Write([]byte(`{"uuid":"b-1","status":"requested","confirmationNumber":"CONF-9"}`))
	}, WithNow(func() time.Time { return now }))

	booking, err := c.BookService(context.Background(), "oil-change", ServiceBookingRequest{
		LicensePlate:     "ABC123",
		CreditCardNumber: "4111111111111111",
	})
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusRequested, booking.Status)
	assert.Equal(t, "CONF-9", booking.ConfirmationNumber)
}

func Test_Client_SearchServiceBookings_defaultWindow(t *testing.T) {
	now := time.Date(2023, 3, 15, 9, 30, 0, 0, time.Local)
	c, _ := newTestClient(t, func(res http.ResponseWriter, req *http.Request) {
		var query ServiceBookingQueryRequest
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&query))
		assert.Equal(t, "2023-03-15 09:30:00.000", query.StartDate)
		assert.Equal(t, "2023-03-15 10:00:00.000", query.EndDate)
		assert.NotNil(t, query.VehicleServiceIds)

		res.Write([]byte(`{"bookings":[],"count":0}`))
	}, WithNow(func() time.Time { return now }))

	result, err := c.SearchServiceBookings(context.Background(), ServiceBookingQueryRequest{QueryOwn: true})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Count)
}

func Test_Client_SearchServiceBookings_customWindow(t *testing.T) {
	now := time.Date(2023, 3, 15, 9, 30, 0, 0, time.Local)
	c, _ := newTestClient(t, func(res http.ResponseWriter, req *http.Request) {
		var query ServiceBookingQueryRequest
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&query))
		assert.Equal(t, "2023-03-15 11:30:00.000", query.EndDate)
		res.Write([]byte(`{"bookings":[],"count":0}`))
	}, WithNow(func() time.Time { return now }), WithBookingWindow(2*time.Hour))

	_, err := c.SearchServiceBookings(context.Background(), ServiceBookingQueryRequest{})
	assert.NoError(t, err)
}

func Test_Client_DeleteSchedule(t *testing.T) {
	c, _ := newTestClient(t, func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/config/schedule/monday", req.URL.Path)
		res.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, c.DeleteSchedule(context.Background(), "monday"))
}

func Test_Client_errorPropagation(t *testing.T) {
	c, _ := newTestClient(t, func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(http.StatusNotFound)
		res.Write([]byte(`{"error":"not_found","error_description":"No spot with ID Z999."}`))
	})

	_, err := c.GetSpot(context.Background(), "Z999")
	assert.Error(t, err)

	dispatchErr, ok := err.(*dispatch.Error)
	assert.True(t, ok)
	assert.Equal(t, dispatch.KindBusiness, dispatchErr.Kind)
	assert.Equal(t, "No spot with ID Z999.", dispatchErr.Message)
}

func Test_DateString_roundTrip(t *testing.T) {
	original := time.Date(2023, 3, 15, 9, 30, 45, 123000000, time.Local)
	rendered := DateString(original)
	assert.Equal(t, "2023-03-15 09:30:45.123", rendered)

	parsed, err := ParseDate(rendered)
	assert.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}
