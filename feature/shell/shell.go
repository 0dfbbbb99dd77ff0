package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

const rule = "========================================"

// Inventory is the set of operations the shell offers.
type Inventory interface {
	View(ctx context.Context, id uint) (models.Product, error)
	Add(ctx context.Context, p models.Product) (models.Product, reconcile.Outcome, error)
	Backup(ctx context.Context) (string, error)
}

// Shell is the interactive menu loop.
type Shell struct {
	inv    Inventory
	in     *bufio.Reader
	out    io.Writer
	tty    bool
	logger *zap.Logger
}

// New creates a shell reading commands from in and writing to out.
// The screen is only cleared between menus when out is a terminal.
func New(inv Inventory, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		inv:    inv,
		in:     bufio.NewReader(in),
		out:    out,
		tty:    isTerminal(out),
		logger: logger,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run shows the menu until the user quits or input ends.
// Only failures of the underlying inventory that are not user mistakes are returned.
func (s *Shell) Run(ctx context.Context) error {
	s.banner()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.menu()
		if err != nil {
			return s.stop(err)
		}

		switch choice {
		case "V":
			err = s.view(ctx)
		case "A":
			err = s.add(ctx)
		case "B":
			err = s.backup(ctx)
		case "Q":
			s.goodbye()
			return nil
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

// stop ends the session; running out of input counts as quitting.
func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		s.goodbye()
		return nil
	}
	return err
}

func (s *Shell) banner() {
	s.println(rule)
	s.println("Welcome to the Store Inventory Tool")
	s.println(rule)
}

func (s *Shell) goodbye() {
	s.println("\n" + rule)
	s.println("Thanks for using the Store Inventory Tool!\nSee you again soon!")
	s.println(rule + "\n")
}

func (s *Shell) menu() (string, error) {
	s.clear()
	for {
		s.println(rule)
		s.println("INVENTORY MENU\n")
		s.println("V)  View a product by ID number")
		s.println("A)  Add a new product")
		s.println("B)  Back up the inventory database")
		s.println("Q)  Quit\n")

		response, err := s.prompt("Please make a selection:  ")
		if err != nil {
			return "", err
		}
		switch choice := strings.ToUpper(response); choice {
		case "V", "A", "B", "Q":
			return choice, nil
		}
		s.println("Sorry, that isn't a valid choice.  Please try again.\n")
	}
}

func (s *Shell) view(ctx context.Context) error {
	var product models.Product
	for {
		response, err := s.prompt("\nPlease enter a product ID, or 'Q' to return to the menu:  ")
		if err != nil {
			return err
		}
		if response == "" {
			back, err := s.yesNo("You didn't enter a product ID.  Do you want to return to the main menu? [Y/N]  ")
			if err != nil || back {
				return err
			}
			continue
		}
		if strings.EqualFold(response, "Q") {
			return nil
		}

		id, err := strconv.ParseUint(response, 10, 0)
		if err != nil {
			s.println("\nSorry, the product ID must be a number.  Please try again.")
			continue
		}

		product, err = s.inv.View(ctx, uint(id))
		if errors.Is(err, inventory.ErrNotFound) {
			s.println("\nNo product with that ID number was found.  Please try again.")
			continue
		}
		if err != nil {
			return err
		}
		break
	}

	s.println(product.Name)
	s.printf("Quantity:  %d\n", product.Quantity)
	s.printf("Price:  %s\n", inventory.FormatPrice(product.PriceCents))
	s.printf("Updated:  %s\n\n", product.UpdatedOn.Format("01/02/2006"))
	return s.wait()
}

func (s *Shell) add(ctx context.Context) error {
	product, ok, err := s.productInfo()
	if err != nil || !ok {
		return err
	}

	save, err := s.confirm()
	if err != nil || !save {
		return err
	}

	stored, outcome, err := s.inv.Add(ctx, product)
	if errors.Is(err, inventory.ErrInvalidProduct) {
		s.printf("\nSorry, %s could not be saved: %v\n", product.Name, err)
		return s.wait()
	}
	if err != nil {
		return err
	}

	switch outcome {
	case reconcile.Inserted:
		s.printf("\n%s saved to database.  ID: %d\n", stored.Name, stored.ID)
	case reconcile.Updated:
		s.printf("\n%s updated.\n", stored.Name)
	default:
		s.printf("\n%s already exists and is not older than today's entry.  Nothing changed.\n", stored.Name)
	}
	return s.wait()
}

// productInfo asks for name, quantity and price. ok is false when the user backs out.
func (s *Shell) productInfo() (p models.Product, ok bool, err error) {
	s.println("\nPlease enter the product name, quantity and price below.")
	s.println("Enter 'Q' to return to the menu.\n")

	for {
		name, err := s.prompt("Product name:  ")
		if err != nil {
			return p, false, err
		}
		if strings.EqualFold(name, "Q") {
			return p, false, nil
		}
		if name == "" {
			back, err := s.yesNo("You did not enter a product name.  Do you want to return to the menu? [Y/N]  ")
			if err != nil || back {
				return p, false, err
			}
			continue
		}
		p.Name = name
		break
	}

	for {
		response, err := s.prompt("Quantity:  ")
		if err != nil {
			return p, false, err
		}
		if strings.EqualFold(response, "Q") {
			return p, false, nil
		}
		qty, err := inventory.ParseQuantity(response)
		if err != nil {
			s.println("Sorry, the quantity must be a whole number.  Please try again, or enter 'Q' to return to the menu.")
			continue
		}
		p.Quantity = qty
		break
	}

	for {
		response, err := s.prompt("Price:  $")
		if err != nil {
			return p, false, err
		}
		if strings.EqualFold(response, "Q") {
			return p, false, nil
		}
		cents, err := inventory.ParsePrice(response)
		if err != nil {
			s.println("Sorry, the price must be in dollars and cents.  Please try again, or enter 'Q' to return to the main menu.")
			continue
		}
		p.PriceCents = cents
		break
	}

	return p, true, nil
}

func (s *Shell) confirm() (bool, error) {
	for {
		response, err := s.prompt("\nSave this product? [Y/N]  ")
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(response) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		s.println("Sorry, you must enter 'Y' or 'N'.  Please try again.")
	}
}

func (s *Shell) backup(ctx context.Context) error {
	path, err := s.inv.Backup(ctx)
	if err != nil {
		if path == "" {
			return err
		}
		s.logger.Warn("Backup upload failed", zap.Error(err))
		s.printf("Backup file %s created, but the upload failed.\n", path)
		return s.wait()
	}
	s.printf("Backup file %s created.\n", path)
	return s.wait()
}

func (s *Shell) yesNo(question string) (bool, error) {
	response, err := s.prompt(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(response, "Y"), nil
}

func (s *Shell) wait() error {
	_, err := s.prompt("Press ENTER to continue...")
	return err
}

// prompt prints question and returns the next input line without its line ending.
// A final line without a newline is still returned; io.EOF is only reported once
// nothing is left to read.
func (s *Shell) prompt(question string) (string, error) {
	fmt.Fprint(s.out, question)
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) clear() {
	if s.tty {
		fmt.Fprint(s.out, "\033[H\033[2J")
	}
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
