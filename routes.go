package gateway

import (
	"github.com/opls-parking/gateway/internal/guard"
)

// Claims used for authorization checks across the OPLS client.
const (
	ClaimAdmin    = "ADMIN"
	ClaimEmployee = "EMPLOYEE"
	ClaimCustomer = "CUSTOMER"
)

// PageRoutes declares every navigable page of the OPLS client along with its
// login and claim requirements. The table is static and immutable at runtime;
// the route guard evaluates each navigation against it.
var PageRoutes = []guard.Route{
	{
		Name: "Hello",
		Path: "/",
	},
	{
		Name: "Login",
		Path: "/login",
	},
	{
		Name: "Create Account",
		Path: "/account",
	},
	{
		Name:         "Administrator Dashboard",
		Path:         "/dashboard/admin",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin},
	},
	{
		Name:         "Customer Dashboard",
		Path:         "/dashboard/customer",
		RequireLogin: true,
		Claims:       []string{ClaimCustomer},
	},
	{
		Name:         "Employee Dashboard",
		Path:         "/dashboard/employee",
		RequireLogin: true,
		Claims:       []string{ClaimEmployee},
	},
	{
		Name:         "Account Information",
		Path:         "/dashboard/account",
		RequireLogin: true,
	},
	{
		Name: "Parking Spot Booking",
		Path: "/spot/booking",
	},
	{
		Name:         "Parking Spot Bookings",
		Path:         "/spot/booking/list",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin, ClaimEmployee},
	},
	{
		Name: "Parking Spots",
		Path: "/spot/list",
	},
	{
		Name:         "New Parking Spot",
		Path:         "/spot",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin},
	},
	{
		Name:         "Parking Spot Information",
		Path:         "/spot/{id}",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin, ClaimEmployee},
	},
	{
		Name:         "New Employee",
		Path:         "/employee",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin},
	},
	{
		Name:         "Employee List",
		Path:         "/employee/list",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin},
	},
	{
		Name:         "Employee",
		Path:         "/employee/{uuid}",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin},
	},
	{
		Name: "New Service Booking",
		Path: "/service/{serviceId}/booking",
	},
	{
		Name:         "Vehicle Service Booking List",
		Path:         "/service/booking/search",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin, ClaimEmployee},
	},
	{
		Name:         "New Service",
		Path:         "/service",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin},
	},
	{
		Name:         "Vehicle Service List",
		Path:         "/service/list",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin},
	},
	{
		Name:         "Vehicle Service",
		Path:         "/service/{id}",
		RequireLogin: true,
		Claims:       []string{ClaimAdmin},
	},
}
