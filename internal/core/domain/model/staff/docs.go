// Package staff contains the Staff aggregate: workshop employees with a role
// that selects their board view and a sector assignment.
package staff
