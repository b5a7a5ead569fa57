// Package shell implements the interactive warehouse menu on top of the
// inventory service.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"warehouse/internal/model"
	"warehouse/internal/service"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Menu choices.
const (
	choiceList = iota + 1
	choiceCreate
	choiceAddQuantity
	choiceRemoveQuantity
	choiceTotalValue
	choiceRemove
	choiceSetPrice
	choiceExit
)

var menu = []string{
	"1. Print all products",
	"2. Add a new product",
	"3. Add quantity to a product",
	"4. Remove quantity from a product",
	"5. Calculate total value of all products",
	"6. Remove a product",
	"7. Update price of a product",
	"8. Exit",
}

// errInputClosed reports that the input ran out while a prompt was waiting.
var errInputClosed = errors.New("input closed")

// Shell reads commands line by line and renders their results.
type Shell struct {
	svc    service.InventoryService
	in     *bufio.Scanner
	out    io.Writer
	styles styles
	logger zerolog.Logger
}

// New creates a shell reading from in and writing to out.
func New(svc service.InventoryService, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
		logger: logger.With().
			Str("component", "shell").
			Str("session_id", uuid.NewString()).
			Logger(),
	}
}

// Run shows the menu until the user exits or the input ends. Cancelling ctx
// stops the loop before the next command is read.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info().Msg("shell session started")
	defer s.logger.Info().Msg("shell session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, err := s.prompt("Enter your choice: ")
		if err != nil {
			return s.exit(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			s.failure("Invalid input. Please enter a number.")
			continue
		}

		s.logger.Debug().Int("choice", choice).Msg("menu choice")

		switch choice {
		case choiceList:
			s.listProducts(ctx)
		case choiceCreate:
			err = s.createProduct(ctx)
		case choiceAddQuantity:
			err = s.addQuantity(ctx)
		case choiceRemoveQuantity:
			err = s.removeQuantity(ctx)
		case choiceTotalValue:
			s.println(fmt.Sprintf("Total value of all products: %.2f", s.svc.TotalValue(ctx)))
		case choiceRemove:
			err = s.removeProduct(ctx)
		case choiceSetPrice:
			err = s.setPrice(ctx)
		case choiceExit:
			return s.exit(nil)
		default:
			s.failure("Invalid choice. Please try again.")
		}

		if err != nil {
			return s.exit(err)
		}
	}
}

func (s *Shell) printMenu() {
	s.println("")
	s.println(s.styles.title.Render("Warehouse"))
	for _, item := range menu {
		s.println(item)
	}
	s.println("")
}

func (s *Shell) listProducts(ctx context.Context) {
	products := s.svc.ListAll(ctx)
	if len(products) == 0 {
		s.println(s.styles.dim.Render("No products in stock."))
		return
	}
	for _, p := range products {
		s.println(p.String())
	}
}

func (s *Shell) createProduct(ctx context.Context) error {
	name, err := s.prompt("Enter product name: ")
	if err != nil {
		return err
	}

	// Duplicates are caught before asking for numbers.
	if _, err := s.svc.Find(ctx, name); err == nil {
		s.report(model.ErrDuplicateProduct)
		return nil
	}

	price, err := s.promptNumber("Enter price per kilogram: ", "price")
	if err != nil {
		return err
	}
	quantity, err := s.promptNumber("Enter quantity: ", "quantity")
	if err != nil {
		return err
	}

	if _, err := s.svc.Create(ctx, name, price, quantity); err != nil {
		s.report(err)
		return nil
	}

	s.success("Product added successfully.")
	return nil
}

func (s *Shell) addQuantity(ctx context.Context) error {
	name, err := s.prompt("Enter product name: ")
	if err != nil {
		return err
	}
	amount, err := s.promptNumber("Enter quantity to add: ", "quantity")
	if err != nil {
		return err
	}

	product, err := s.svc.AddQuantity(ctx, name, amount)
	if err != nil {
		s.report(err)
		return nil
	}

	s.success(fmt.Sprintf("Added %.2fkg to %s", amount, product.Name))
	return nil
}

func (s *Shell) removeQuantity(ctx context.Context) error {
	name, err := s.prompt("Enter product name: ")
	if err != nil {
		return err
	}
	amount, err := s.promptNumber("Enter quantity to remove: ", "quantity")
	if err != nil {
		return err
	}

	product, err := s.svc.RemoveQuantity(ctx, name, amount)
	if err != nil {
		s.report(err)
		return nil
	}

	s.success(fmt.Sprintf("Removed %.2fkg from %s", amount, product.Name))
	return nil
}

func (s *Shell) removeProduct(ctx context.Context) error {
	name, err := s.prompt("Enter product name to remove: ")
	if err != nil {
		return err
	}

	if err := s.svc.Remove(ctx, name); err != nil {
		s.report(err)
		return nil
	}

	s.success(fmt.Sprintf("Product %s has been removed.", name))
	return nil
}

func (s *Shell) setPrice(ctx context.Context) error {
	name, err := s.prompt("Enter product name: ")
	if err != nil {
		return err
	}

	if _, err := s.svc.Find(ctx, name); err != nil {
		s.report(err)
		return nil
	}

	price, err := s.promptNumber("Enter the new price per kilogram: ", "price")
	if err != nil {
		return err
	}

	product, err := s.svc.SetPrice(ctx, name, price)
	if err != nil {
		s.report(err)
		return nil
	}

	s.success(fmt.Sprintf("Price for %s has been updated to %.2f per kg.", product.Name, product.PricePerKg))
	return nil
}

// report renders an error returned by the inventory service.
func (s *Shell) report(err error) {
	switch model.CodeOf(err) {
	case model.ErrCodeProductNotFound:
		s.failure("Product not found.")
	case model.ErrCodeDuplicateProduct:
		s.failure("Product already exists.")
	case model.ErrCodeInsufficientQuantity:
		s.notice("Not enough quantity to remove.")
	case model.ErrCodeInvalidArgument:
		s.failure("Invalid input. " + strings.TrimSuffix(err.Error(), ".") + ".")
	default:
		s.logger.Error().Err(err).Msg("unexpected error")
		s.failure("Error: " + err.Error())
	}
}

// prompt prints label and returns the next trimmed input line.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// promptNumber asks until a number is entered. Sign is not checked here; the
// registry decides whether a value is acceptable.
func (s *Shell) promptNumber(label, what string) (float64, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, nil
		}
		s.failure(fmt.Sprintf("Invalid input. Please enter a valid %s.", what))
	}
}

// exit prints the farewell line. Running out of input counts as exiting.
func (s *Shell) exit(err error) error {
	if err != nil && !errors.Is(err, errInputClosed) {
		s.logger.Error().Err(err).Msg("shell stopped")
		return err
	}
	s.println("Exiting program.")
	return nil
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) success(msg string) { s.println(s.styles.success.Render(msg)) }
func (s *Shell) failure(msg string) { s.println(s.styles.failure.Render(msg)) }
func (s *Shell) notice(msg string)  { s.println(s.styles.notice.Render(msg)) }
