package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"
	"dispatch-board-service/pkg/logger"
	"dispatch-board-service/pkg/metrics"
	"dispatch-board-service/pkg/utils"
)

// Placeholder contact data shown in the customer picker
const (
	defaultPrimaryContact = "John Smith"
	defaultContactPhone   = "555-0123"
	defaultContactEmail   = "contact@example.com"
	defaultBillingAddress = "123 Business St, Chicago, IL 60601"
	defaultEquipment      = "53' Dry Van"
	defaultTempMin        = "34"
	defaultTempMax        = "36"
)

// CustomerAggregator derives the customer table from the shipment collection.
// Nothing is cached; every call rescans.
type CustomerAggregator struct {
	shipmentRepo repository.ShipmentRepository
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewCustomerAggregator creates a new customer aggregator
func NewCustomerAggregator(shipmentRepo repository.ShipmentRepository, metrics *metrics.Metrics, logger logger.Logger) *CustomerAggregator {
	return &CustomerAggregator{
		shipmentRepo: shipmentRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// ListCustomers aggregates, searches and sorts customers
func (a *CustomerAggregator) ListCustomers(ctx context.Context, query entity.CustomerQuery) ([]entity.Customer, error) {
	if query.Sort == "" {
		query.Sort = entity.SortByName
	}
	if !query.Sort.IsValid() {
		return nil, fmt.Errorf("%w: unknown sort field %q", entity.ErrInvalidQuery, query.Sort)
	}

	shipments, err := a.shipmentRepo.List(ctx)
	if err != nil {
		a.metrics.ErrorsCount.WithLabelValues("list_customers").Inc()
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	a.metrics.CustomerQueries.Inc()

	customers := AggregateCustomers(shipments)
	if query.Search != "" {
		customers = searchCustomers(customers, query.Search)
	}
	SortCustomers(customers, query.Sort, query.Descending)

	a.logger.Debug("Customers aggregated", "count", len(customers), "search", query.Search, "sort", query.Sort)
	return customers, nil
}

// Profile returns the customer picker defaults for one customer. Names match
// exactly, the same way customers are grouped.
func (a *CustomerAggregator) Profile(ctx context.Context, name string) (*entity.CustomerProfile, error) {
	shipments, err := a.shipmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	for _, c := range AggregateCustomers(shipments) {
		if c.Name == name {
			profile := c.Profile
			return &profile, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrCustomerNotFound, name)
}

type customerAccumulator struct {
	customer   entity.Customer
	shipments  []entity.Shipment
	pickups    []string
	deliveries []string
	lastDate   time.Time
	hasDate    bool
}

// AggregateCustomers groups shipments by customer name in first-occurrence order
func AggregateCustomers(shipments []entity.Shipment) []entity.Customer {
	index := make(map[string]*customerAccumulator)
	var order []string

	for _, s := range shipments {
		acc, ok := index[s.Customer]
		if !ok {
			acc = &customerAccumulator{customer: entity.Customer{ID: s.ID, Name: s.Customer}}
			index[s.Customer] = acc
			order = append(order, s.Customer)
		}
		acc.shipments = append(acc.shipments, s)
		acc.customer.TotalShipments++
		acc.customer.TotalSpent += s.Rate
		acc.pickups = append(acc.pickups, s.PickupLocation)
		acc.deliveries = append(acc.deliveries, s.DeliveryLocation)
		if d, ok := utils.ParseDate(s.DeliveryDate); ok && (!acc.hasDate || d.After(acc.lastDate)) {
			acc.lastDate = d
			acc.hasDate = true
			acc.customer.LastShipmentDate = s.DeliveryDate
		}
	}

	customers := make([]entity.Customer, 0, len(order))
	for _, name := range order {
		acc := index[name]
		c := acc.customer
		c.AvgShipmentCost = utils.RoundHalfUp(c.TotalSpent / float64(c.TotalShipments))
		c.CommonLocations = entity.CommonLocations{
			Pickup:   mostFrequent(acc.pickups),
			Delivery: mostFrequent(acc.deliveries),
		}
		c.Profile = buildProfile(acc.shipments)
		customers = append(customers, c)
	}
	return customers
}

// mostFrequent returns the mode of values. On ties the value seen first wins.
func mostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	best, bestCount := "", 0
	for _, v := range values {
		counts[v]++
	}
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

func searchCustomers(customers []entity.Customer, term string) []entity.Customer {
	out := customers[:0:0]
	for _, c := range customers {
		for _, value := range renderedValues(c) {
			if utils.ContainsFold(value, term) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// renderedValues are the cells a user sees in the customer table
func renderedValues(c entity.Customer) []string {
	return []string{
		c.Name,
		strconv.Itoa(c.TotalShipments),
		strconv.FormatFloat(c.TotalSpent, 'f', -1, 64),
		strconv.FormatInt(c.AvgShipmentCost, 10),
		c.CommonLocations.Pickup,
		c.CommonLocations.Delivery,
		c.LastShipmentDate,
	}
}

// SortCustomers orders customers in place by field. Equal keys fall back to
// name ascending regardless of direction.
func SortCustomers(customers []entity.Customer, field entity.CustomerSortField, descending bool) {
	cmp := customerComparator(field)
	sort.SliceStable(customers, func(i, j int) bool {
		a, b := customers[i], customers[j]
		if c := cmp(a, b); c != 0 {
			if descending {
				return c > 0
			}
			return c < 0
		}
		return a.Name < b.Name
	})
}

func customerComparator(field entity.CustomerSortField) func(a, b entity.Customer) int {
	switch field {
	case entity.SortByTotalShipments:
		return func(a, b entity.Customer) int { return compareOrdered(a.TotalShipments, b.TotalShipments) }
	case entity.SortByTotalSpent:
		return func(a, b entity.Customer) int { return compareOrdered(a.TotalSpent, b.TotalSpent) }
	case entity.SortByAvgShipmentCost:
		return func(a, b entity.Customer) int { return compareOrdered(a.AvgShipmentCost, b.AvgShipmentCost) }
	case entity.SortByLastShipmentDate:
		return func(a, b entity.Customer) int {
			da, _ := utils.ParseDate(a.LastShipmentDate)
			db, _ := utils.ParseDate(b.LastShipmentDate)
			return da.Compare(db)
		}
	default:
		return func(a, b entity.Customer) int { return strings.Compare(a.Name, b.Name) }
	}
}

func compareOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func buildProfile(shipments []entity.Shipment) entity.CustomerProfile {
	first := shipments[0]
	profile := entity.CustomerProfile{
		Name:           first.Customer,
		PrimaryContact: firstNonEmpty(shipments, func(s entity.Shipment) string { return s.CustomerContact }, defaultPrimaryContact),
		ContactPhone:   firstNonEmpty(shipments, func(s entity.Shipment) string { return s.CustomerPhone }, defaultContactPhone),
		ContactEmail:   firstNonEmpty(shipments, func(s entity.Shipment) string { return s.CustomerEmail }, defaultContactEmail),
		BillingAddress: defaultBillingAddress,
	}

	equipment := make([]string, 0, len(shipments))
	for _, s := range shipments {
		if s.EquipmentType != "" {
			equipment = append(equipment, s.EquipmentType)
		}
	}
	profile.DefaultEquipment = mostFrequent(equipment)
	if profile.DefaultEquipment == "" {
		profile.DefaultEquipment = defaultEquipment
	}

	if strings.Contains(strings.ToLower(profile.DefaultEquipment), "reefer") {
		profile.RequiresTemperatureControl = true
		profile.DefaultTempMin = defaultTempMin
		profile.DefaultTempMax = defaultTempMax
	}
	return profile
}

func firstNonEmpty(shipments []entity.Shipment, get func(entity.Shipment) string, fallback string) string {
	for _, s := range shipments {
		if v := strings.TrimSpace(get(s)); v != "" {
			return v
		}
	}
	return fallback
}
