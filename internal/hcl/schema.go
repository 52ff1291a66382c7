package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top level of a script file. Only action blocks are
// allowed; any other block or attribute is a decode error.
type fileRoot struct {
	Actions []*actionBlock `hcl:"action,block"`
}

// actionBlock is the HCL shape of `action "<kind>" "<name>" { ... }`. Every
// attribute other than depends_on is an argument of the action.
type actionBlock struct {
	Kind      string   `hcl:"kind,label"`
	Name      string   `hcl:"name,label"`
	DependsOn []string `hcl:"depends_on,optional"`
	Arguments hcl.Body `hcl:",remain"`
}
