package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/stockpilot/stockpilot/internal/domain/models"
	"github.com/stockpilot/stockpilot/internal/service/reports"
	"github.com/stockpilot/stockpilot/pkg/clients/inventory"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnknownCommand indicates we do not support the requested command.
var ErrUnknownCommand = errors.New("unknown command")

// ErrLoginRequired indicates an authenticated command was issued without an
// active session.
var ErrLoginRequired = errors.New("login required")

// Guard exposes the live session state the dispatcher gates commands on.
type Guard interface {
	IsAuthenticated() bool
	Role() string
}

// Dispatcher routes command lines to API calls and renders the results.
// Every mutating command refetches the affected collection before the
// output is considered consistent.
type Dispatcher struct {
	client  *inventory.Client
	guard   Guard
	reports *reports.Service
	in      *bufio.Reader
	out     io.Writer
	logger  *zap.Logger

	exporter func(io.Writer, *models.ReportView) error
}

// NewDispatcher constructs a command dispatcher. The reader must be the same
// one the surrounding shell reads command lines from, so interactive prompts
// and the prompt loop never buffer past each other.
func NewDispatcher(client *inventory.Client, guard Guard, reportSvc *reports.Service, in *bufio.Reader, out io.Writer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		client:   client,
		guard:    guard,
		reports:  reportSvc,
		in:       in,
		out:      out,
		logger:   logger,
		exporter: reports.WriteCSV,
	}
}

// openCommands may run without a session. Everything else routes back to
// login first, decided fresh on every dispatch.
var openCommands = map[string]bool{
	"help":     true,
	"login":    true,
	"register": true,
}

// Execute parses one command line and runs it.
func (d *Dispatcher) Execute(ctx context.Context, line string) error {
	args := strings.Fields(strings.TrimSpace(line))
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	args = args[1:]

	if !openCommands[name] && !d.guard.IsAuthenticated() {
		return ErrLoginRequired
	}

	switch name {
	case "help":
		return d.printHelp()
	case "login":
		return d.login(ctx, args)
	case "register":
		return d.register(ctx, args)
	case "logout":
		if err := d.client.Auth.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(d.out, "Logged out.")
		return nil
	case "whoami":
		fmt.Fprintf(d.out, "Role: %s\n", d.guard.Role())
		return nil
	case "stats":
		return d.stats(ctx)
	case "products":
		return d.products(ctx, args)
	case "suppliers":
		return d.suppliers(ctx, args)
	case "stock":
		return d.stock(ctx, args)
	case "report":
		return d.report(ctx)
	case "export":
		return d.export(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}

func (d *Dispatcher) printHelp() error {
	fmt.Fprintln(d.out, `Commands:
  login <username> <password>
  register <username> <email> <password>
  logout
  whoami
  stats
  products list|get <id>|add|update <id>|delete <id>|low-stock
  suppliers list|get <id>|add|update <id>|delete <id>|count
  stock in|out <product-id> <quantity> [notes...]
  stock transactions [product-id]
  report
  export <file>
  exit`)
	return nil
}

func (d *Dispatcher) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: login <username> <password>", ErrInvalidArguments)
	}

	resp, err := d.client.Auth.Login(ctx, models.LoginRequest{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Logged in as %s (%s).\n", args[0], resp.Role)
	return nil
}

func (d *Dispatcher) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: register <username> <email> <password>", ErrInvalidArguments)
	}
	if len(args[2]) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidArguments)
	}

	resp, err := d.client.Auth.Register(ctx, models.RegisterRequest{
		Username: args[0],
		Email:    args[1],
		Password: args[2],
	})
	if err != nil {
		return err
	}

	message := resp.Message
	if message == "" {
		message = "Account created. You can log in now."
	}
	fmt.Fprintln(d.out, message)
	return nil
}

func (d *Dispatcher) stats(ctx context.Context) error {
	stats, err := d.client.Products.DashboardStats(ctx)
	if err != nil {
		return err
	}

	lowStock, err := d.client.Products.LowStock(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Products: %d\nLow stock: %d\nInventory value: %.2f\n",
		stats.TotalProducts, stats.LowStockCount, stats.TotalValue)
	if len(lowStock) > 0 {
		fmt.Fprintln(d.out, "\nProducts below minimum stock:")
		d.renderProducts(lowStock)
	}
	return nil
}

func (d *Dispatcher) products(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		list, err := d.client.Products.List(ctx)
		if err != nil {
			return err
		}
		d.renderProducts(list)
		return nil
	case "low-stock":
		list, err := d.client.Products.LowStock(ctx)
		if err != nil {
			return err
		}
		d.renderProducts(list)
		return nil
	case "get":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		product, err := d.client.Products.Get(ctx, id)
		if err != nil {
			return err
		}
		d.renderProducts([]models.Product{*product})
		return nil
	case "add":
		product, err := d.promptProduct(models.Product{})
		if err != nil {
			return err
		}
		if _, err := d.client.Products.Create(ctx, product); err != nil {
			return err
		}
		return d.refetchProducts(ctx, "Product created.")
	case "update":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		current, err := d.client.Products.Get(ctx, id)
		if err != nil {
			return err
		}
		product, err := d.promptProduct(*current)
		if err != nil {
			return err
		}
		if _, err := d.client.Products.Update(ctx, id, product); err != nil {
			return err
		}
		return d.refetchProducts(ctx, "Product updated.")
	case "delete":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		if err := d.client.Products.Delete(ctx, id); err != nil {
			return err
		}
		return d.refetchProducts(ctx, "Product deleted.")
	default:
		return fmt.Errorf("%w: products %s", ErrUnknownCommand, args[0])
	}
}

func (d *Dispatcher) refetchProducts(ctx context.Context, note string) error {
	list, err := d.client.Products.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, note)
	d.renderProducts(list)
	return nil
}

func (d *Dispatcher) suppliers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		list, err := d.client.Suppliers.List(ctx)
		if err != nil {
			return err
		}
		d.renderSuppliers(list)
		return nil
	case "count":
		count, err := d.client.Suppliers.Count(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "Suppliers: %d\n", count.TotalSuppliers)
		return nil
	case "get":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		supplier, err := d.client.Suppliers.Get(ctx, id)
		if err != nil {
			return err
		}
		d.renderSuppliers([]models.Supplier{*supplier})
		return nil
	case "add":
		supplier, err := d.promptSupplier(models.Supplier{})
		if err != nil {
			return err
		}
		if _, err := d.client.Suppliers.Create(ctx, supplier); err != nil {
			return err
		}
		return d.refetchSuppliers(ctx, "Supplier created.")
	case "update":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		current, err := d.client.Suppliers.Get(ctx, id)
		if err != nil {
			return err
		}
		supplier, err := d.promptSupplier(*current)
		if err != nil {
			return err
		}
		if _, err := d.client.Suppliers.Update(ctx, id, supplier); err != nil {
			return err
		}
		return d.refetchSuppliers(ctx, "Supplier updated.")
	case "delete":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		if err := d.client.Suppliers.Delete(ctx, id); err != nil {
			return err
		}
		return d.refetchSuppliers(ctx, "Supplier deleted.")
	default:
		return fmt.Errorf("%w: suppliers %s", ErrUnknownCommand, args[0])
	}
}

func (d *Dispatcher) refetchSuppliers(ctx context.Context, note string) error {
	list, err := d.client.Suppliers.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, note)
	d.renderSuppliers(list)
	return nil
}

func (d *Dispatcher) stock(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: stock in|out|transactions", ErrInvalidArguments)
	}

	switch args[0] {
	case "in", "out":
		if len(args) < 3 {
			return fmt.Errorf("%w: usage: stock %s <product-id> <quantity> [notes...]", ErrInvalidArguments, args[0])
		}
		productID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: product id must be a number", ErrInvalidArguments)
		}
		quantity, err := strconv.Atoi(args[2])
		if err != nil || quantity <= 0 {
			return fmt.Errorf("%w: quantity must be a positive number", ErrInvalidArguments)
		}

		req := models.StockRequest{
			ProductID: productID,
			Quantity:  quantity,
			Notes:     strings.Join(args[3:], " "),
		}

		var tx *models.StockTransaction
		if args[0] == "in" {
			tx, err = d.client.Stock.In(ctx, req)
		} else {
			tx, err = d.client.Stock.Out(ctx, req)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(d.out, "Recorded %s movement of %d units.\n", tx.Type, tx.Quantity)
		transactions, err := d.client.Stock.ProductTransactions(ctx, productID)
		if err != nil {
			return err
		}
		d.renderTransactions(transactions)
		return nil
	case "transactions":
		if len(args) > 1 {
			productID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: product id must be a number", ErrInvalidArguments)
			}
			transactions, err := d.client.Stock.ProductTransactions(ctx, productID)
			if err != nil {
				return err
			}
			d.renderTransactions(transactions)
			return nil
		}
		transactions, err := d.client.Stock.Transactions(ctx)
		if err != nil {
			return err
		}
		d.renderTransactions(transactions)
		return nil
	default:
		return fmt.Errorf("%w: stock %s", ErrUnknownCommand, args[0])
	}
}

func (d *Dispatcher) report(ctx context.Context) error {
	view, err := d.reports.Fetch(ctx)
	if err != nil {
		return err
	}
	d.renderReport(view)
	return nil
}

func (d *Dispatcher) export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: export <file>", ErrInvalidArguments)
	}

	view, err := d.reports.Fetch(ctx)
	if err != nil {
		return err
	}

	f, err := createFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := d.exporter(f, view); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Report written to %s\n", args[0])
	return nil
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: an id is required", ErrInvalidArguments)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: id must be a number", ErrInvalidArguments)
	}
	return id, nil
}

func (d *Dispatcher) renderProducts(products []models.Product) {
	w := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tCATEGORY\tUNIT\tPRICE\tSTOCK\tMIN")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\t%d\t%d\n",
			p.ID, p.ProductID, p.Name, p.Category, p.Unit, p.Price, p.CurrentStock, p.MinStockLevel)
	}
	_ = w.Flush()
}

func (d *Dispatcher) renderSuppliers(suppliers []models.Supplier) {
	w := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tPHONE\tEMAIL\tADDRESS")
	for _, s := range suppliers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.SupplierID, s.Name, s.Phone, s.Email, s.Address)
	}
	_ = w.Flush()
}

func (d *Dispatcher) renderTransactions(transactions []models.StockTransaction) {
	w := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tPRODUCT\tQTY\tDATE\tNOTES")
	for _, tx := range transactions {
		name := strconv.Itoa(tx.ProductID)
		if tx.Product != nil {
			name = tx.Product.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			tx.ID, tx.Type, name, tx.Quantity, tx.TransactionDate.Format("2006-01-02 15:04"), tx.Notes)
	}
	_ = w.Flush()
}

func (d *Dispatcher) renderReport(view *models.ReportView) {
	fmt.Fprintf(d.out, "Products: %d  Suppliers: %d  Transactions: %d (in %d / out %d)\n\n",
		view.TotalProducts, view.SupplierCount,
		view.StockMovement.TotalTransactions, view.StockMovement.TotalStockIn, view.StockMovement.TotalStockOut)

	fmt.Fprintln(d.out, "Products by category:")
	for _, entry := range view.CategoryDistribution {
		fmt.Fprintf(d.out, "  %-20s %d\n", entry.Name, int(entry.Value))
	}

	fmt.Fprintln(d.out, "\nInventory value by category:")
	for _, entry := range view.ValueByCategory {
		fmt.Fprintf(d.out, "  %-20s %.2f\n", entry.Name, entry.Value)
	}

	if len(view.LowStockSummary) > 0 {
		fmt.Fprintln(d.out, "\nLow stock:")
		w := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tSTOCK\tMIN\tSHORT")
		for _, item := range view.LowStockSummary {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
				item.ProductID, item.Name, item.CurrentStock, item.MinStockLevel, item.Difference)
		}
		_ = w.Flush()
	}
}
