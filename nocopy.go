package grip

// noCopy is embedded in move-restricted wrappers. The Lock/Unlock pair makes
// go vet's copylocks check flag any attempt to copy the enclosing struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
