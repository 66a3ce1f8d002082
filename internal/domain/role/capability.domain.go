// internal/domain/role/capability.domain.go
package role

// Entity names a record type the workflow engine governs.
type Entity string

const (
	EntityAccount Entity = "account"
	EntityLead    Entity = "lead"
	EntityOrder   Entity = "order"
	EntityProduct Entity = "product"
)

// Operation names an action a caller may attempt on an entity.
type Operation string

const (
	OpCreate         Operation = "create"
	OpList           Operation = "list"
	OpGet            Operation = "get"
	OpUpdate         Operation = "update"
	OpUpdateStatus   Operation = "update_status"
	OpUpdatePayment  Operation = "update_payment"
	OpUpdateCourier  Operation = "update_courier"
	OpChangePassword Operation = "change_password"
	OpDelete         Operation = "delete"
)

// capabilities is the static role -> entity -> operations table.
// It answers "is this role structurally allowed to attempt this operation",
// BEFORE any scope narrowing. Scope (own record only, own team only) is the
// policy package's job.
//
// Every role carries OpUpdate and OpChangePassword on accounts because
// self-service profile updates exist for everyone; the write-scope policy
// restricts non-admins to their own record and a fixed field subset.
var capabilities = map[Role]map[Entity][]Operation{
	RoleAdmin: {
		EntityAccount: {OpCreate, OpList, OpGet, OpUpdate, OpUpdateStatus, OpChangePassword, OpDelete},
		EntityLead:    {OpCreate, OpList, OpGet, OpUpdate, OpDelete},
		EntityOrder:   {OpCreate, OpList, OpGet, OpUpdate, OpUpdateStatus, OpUpdatePayment, OpUpdateCourier, OpDelete},
		EntityProduct: {OpCreate, OpList, OpGet, OpUpdate, OpDelete},
	},
	RoleSubAdmin: {
		EntityAccount: {OpList, OpGet, OpUpdate, OpChangePassword},
		EntityLead:    {OpCreate, OpList, OpGet, OpUpdate},
		EntityOrder:   {OpCreate, OpList, OpGet, OpUpdate, OpUpdateStatus, OpUpdatePayment, OpUpdateCourier},
		EntityProduct: {OpList, OpGet, OpUpdate},
	},
	RoleTeamHead: {
		EntityAccount: {OpList, OpGet, OpUpdate, OpChangePassword},
		EntityLead:    {OpCreate, OpList, OpGet, OpUpdate},
		EntityOrder:   {OpCreate, OpList, OpGet, OpUpdateStatus},
		EntityProduct: {OpList, OpGet},
	},
	RoleAgent: {
		// Agents may never list accounts; OpList is absent on purpose.
		EntityAccount: {OpGet, OpUpdate, OpChangePassword},
		EntityLead:    {OpCreate, OpList, OpGet, OpUpdate},
		EntityOrder:   {OpCreate, OpList, OpGet, OpUpdateStatus},
		EntityProduct: {OpList, OpGet},
	},
}

// Can reports whether role r is structurally permitted to attempt op on e.
func Can(r Role, e Entity, op Operation) bool {
	ops, ok := capabilities[r][e]
	if !ok {
		return false
	}
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}
