// internal/app/engine/engine.go
package engine

import (
	"context"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/app/commands"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/assets"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/crypto"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/events"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

// Stores bundles the persistence ports the engine runs on.
type Stores struct {
	Accounts  repository.AccountStore
	Leads     repository.LeadStore
	Orders    repository.OrderStore
	Products  repository.ProductStore
	Audits    repository.AuditStore
	TxManager repository.TransactionManager
}

// Engine is the single entry point for every business operation. Each
// method authorizes the caller, validates input, applies the change
// atomically and emits the audit event; callers never talk to stores
// directly.
type Engine struct {
	createAccount     *commands.CreateAccountCmd
	listAccounts      *commands.ListAccountsCmd
	getAccount        *commands.GetAccountCmd
	updateAccount     *commands.UpdateAccountCmd
	setAccountStatus  *commands.SetAccountStatusCmd
	deleteAccount     *commands.DeleteAccountCmd
	selfUpdateAccount *commands.SelfUpdateAccountCmd
	changePassword    *commands.ChangePasswordCmd
	recordLogin       *commands.RecordLoginCmd

	createLead *commands.CreateLeadCmd
	listLeads  *commands.ListLeadsCmd
	getLead    *commands.GetLeadCmd
	updateLead *commands.UpdateLeadCmd
	deleteLead *commands.DeleteLeadCmd

	createOrder        *commands.CreateOrderCmd
	listOrders         *commands.ListOrdersCmd
	getOrder           *commands.GetOrderCmd
	updateOrderFields  *commands.UpdateOrderFieldsCmd
	updateOrderStatus  *commands.UpdateOrderStatusCmd
	updateOrderPayment *commands.UpdateOrderPaymentCmd
	updateOrderCourier *commands.UpdateOrderCourierCmd
	deleteOrder        *commands.DeleteOrderCmd

	createProduct *commands.CreateProductCmd
	listProducts  *commands.ListProductsCmd
	getProduct    *commands.GetProductCmd
	updateProduct *commands.UpdateProductCmd
	deleteProduct *commands.DeleteProductCmd
}

// New wires the command handlers. sink and assetStore may be nil; the
// engine then skips event publishing and asset release respectively.
func New(s Stores, hasher crypto.PasswordHasher, assetStore assets.AssetStore, sink events.Publisher) *Engine {
	rec := commands.NewRecorder(s.Audits, sink)

	return &Engine{
		createAccount:     commands.NewCreateAccountCmd(s.Accounts, hasher, rec),
		listAccounts:      commands.NewListAccountsCmd(s.Accounts),
		getAccount:        commands.NewGetAccountCmd(s.Accounts),
		updateAccount:     commands.NewUpdateAccountCmd(s.Accounts, rec, s.TxManager),
		setAccountStatus:  commands.NewSetAccountStatusCmd(s.Accounts, rec, s.TxManager),
		deleteAccount:     commands.NewDeleteAccountCmd(s.Accounts, rec, s.TxManager),
		selfUpdateAccount: commands.NewSelfUpdateAccountCmd(s.Accounts, rec),
		changePassword:    commands.NewChangePasswordCmd(s.Accounts, hasher, rec),
		recordLogin:       commands.NewRecordLoginCmd(s.Accounts, rec),

		createLead: commands.NewCreateLeadCmd(s.Leads, s.Accounts, rec),
		listLeads:  commands.NewListLeadsCmd(s.Leads),
		getLead:    commands.NewGetLeadCmd(s.Leads, s.Accounts),
		updateLead: commands.NewUpdateLeadCmd(s.Leads, s.Accounts, rec, s.TxManager),
		deleteLead: commands.NewDeleteLeadCmd(s.Leads, rec),

		createOrder:        commands.NewCreateOrderCmd(s.Orders, s.Products, s.Accounts, rec),
		listOrders:         commands.NewListOrdersCmd(s.Orders),
		getOrder:           commands.NewGetOrderCmd(s.Orders, s.Accounts),
		updateOrderFields:  commands.NewUpdateOrderFieldsCmd(s.Orders, rec, s.TxManager),
		updateOrderStatus:  commands.NewUpdateOrderStatusCmd(s.Orders, s.Accounts, rec, s.TxManager),
		updateOrderPayment: commands.NewUpdateOrderPaymentCmd(s.Orders, rec, s.TxManager),
		updateOrderCourier: commands.NewUpdateOrderCourierCmd(s.Orders, rec, s.TxManager),
		deleteOrder:        commands.NewDeleteOrderCmd(s.Orders, rec),

		createProduct: commands.NewCreateProductCmd(s.Products, rec),
		listProducts:  commands.NewListProductsCmd(s.Products),
		getProduct:    commands.NewGetProductCmd(s.Products),
		updateProduct: commands.NewUpdateProductCmd(s.Products, assetStore, rec),
		deleteProduct: commands.NewDeleteProductCmd(s.Products, assetStore, rec),
	}
}

// Accounts

func (e *Engine) CreateAccount(ctx context.Context, p commands.CreateAccountParams) (*account.Account, error) {
	return e.createAccount.Handle(ctx, p)
}

func (e *Engine) ListAccounts(ctx context.Context, p commands.ListAccountsParams) ([]*account.Account, error) {
	return e.listAccounts.Handle(ctx, p)
}

func (e *Engine) GetAccount(ctx context.Context, p commands.GetAccountParams) (*account.Account, error) {
	return e.getAccount.Handle(ctx, p)
}

func (e *Engine) UpdateAccount(ctx context.Context, p commands.UpdateAccountParams) (*account.Account, error) {
	return e.updateAccount.Handle(ctx, p)
}

func (e *Engine) SetAccountStatus(ctx context.Context, p commands.SetAccountStatusParams) (*account.Account, error) {
	return e.setAccountStatus.Handle(ctx, p)
}

func (e *Engine) DeleteAccount(ctx context.Context, p commands.DeleteAccountParams) error {
	return e.deleteAccount.Handle(ctx, p)
}

func (e *Engine) SelfUpdateAccount(ctx context.Context, p commands.SelfUpdateAccountParams) (*account.Account, error) {
	return e.selfUpdateAccount.Handle(ctx, p)
}

func (e *Engine) ChangePassword(ctx context.Context, p commands.ChangePasswordParams) error {
	return e.changePassword.Handle(ctx, p)
}

func (e *Engine) RecordLogin(ctx context.Context, p commands.RecordLoginParams) error {
	return e.recordLogin.Handle(ctx, p)
}

// Leads

func (e *Engine) CreateLead(ctx context.Context, p commands.CreateLeadParams) (*lead.Lead, error) {
	return e.createLead.Handle(ctx, p)
}

func (e *Engine) ListLeads(ctx context.Context, p commands.ListLeadsParams) ([]*lead.Lead, error) {
	return e.listLeads.Handle(ctx, p)
}

func (e *Engine) GetLead(ctx context.Context, p commands.GetLeadParams) (*lead.Lead, error) {
	return e.getLead.Handle(ctx, p)
}

func (e *Engine) UpdateLead(ctx context.Context, p commands.UpdateLeadParams) (*lead.Lead, error) {
	return e.updateLead.Handle(ctx, p)
}

func (e *Engine) DeleteLead(ctx context.Context, p commands.DeleteLeadParams) error {
	return e.deleteLead.Handle(ctx, p)
}

// Orders

func (e *Engine) CreateOrder(ctx context.Context, p commands.CreateOrderParams) (*order.Order, error) {
	return e.createOrder.Handle(ctx, p)
}

func (e *Engine) ListOrders(ctx context.Context, p commands.ListOrdersParams) ([]*order.Order, int64, error) {
	return e.listOrders.Handle(ctx, p)
}

func (e *Engine) GetOrder(ctx context.Context, p commands.GetOrderParams) (*order.Order, error) {
	return e.getOrder.Handle(ctx, p)
}

func (e *Engine) UpdateOrderFields(ctx context.Context, p commands.UpdateOrderFieldsParams) (*order.Order, error) {
	return e.updateOrderFields.Handle(ctx, p)
}

func (e *Engine) UpdateOrderStatus(ctx context.Context, p commands.UpdateOrderStatusParams) (*order.Order, error) {
	return e.updateOrderStatus.Handle(ctx, p)
}

func (e *Engine) UpdateOrderPayment(ctx context.Context, p commands.UpdateOrderPaymentParams) (*order.Order, error) {
	return e.updateOrderPayment.Handle(ctx, p)
}

func (e *Engine) UpdateOrderCourier(ctx context.Context, p commands.UpdateOrderCourierParams) (*order.Order, error) {
	return e.updateOrderCourier.Handle(ctx, p)
}

func (e *Engine) DeleteOrder(ctx context.Context, p commands.DeleteOrderParams) error {
	return e.deleteOrder.Handle(ctx, p)
}

// Products

func (e *Engine) CreateProduct(ctx context.Context, p commands.CreateProductParams) (*product.Product, error) {
	return e.createProduct.Handle(ctx, p)
}

func (e *Engine) ListProducts(ctx context.Context, p commands.ListProductsParams) ([]*product.Product, error) {
	return e.listProducts.Handle(ctx, p)
}

func (e *Engine) GetProduct(ctx context.Context, p commands.GetProductParams) (*product.Product, error) {
	return e.getProduct.Handle(ctx, p)
}

func (e *Engine) UpdateProduct(ctx context.Context, p commands.UpdateProductParams) (*product.Product, error) {
	return e.updateProduct.Handle(ctx, p)
}

func (e *Engine) DeleteProduct(ctx context.Context, p commands.DeleteProductParams) error {
	return e.deleteProduct.Handle(ctx, p)
}
