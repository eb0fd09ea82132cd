package domain

// Action is the kind of operation a permission predicate is asked about
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDestroy  Action = "destroy"
)

// IsSafe reports whether the action only reads
func (a Action) IsSafe() bool {
	return a == ActionList || a == ActionRetrieve
}

func isAdmin(caller *User) bool {
	return caller != nil && caller.IsSuperuser
}

// IsAdminCreate allows creation only to admins and every other action to anyone
func IsAdminCreate(caller *User, action Action) bool {
	if action == ActionCreate {
		return isAdmin(caller)
	}
	return true
}

// IsAdminOrSelfChange allows reads to anyone and object changes to admins or the object's owner
func IsAdminOrSelfChange(caller, target *User, action Action) bool {
	if action.IsSafe() || isAdmin(caller) {
		return true
	}
	return caller != nil && target != nil && caller.ID == target.ID
}

// IsAdminOrReadOnly allows reads to anyone and writes to admins
func IsAdminOrReadOnly(caller *User, action Action) bool {
	return action.IsSafe() || isAdmin(caller)
}
