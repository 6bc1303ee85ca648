package grammarfile

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

const cueSchema = `
#Level: "none" | "optional" | "required"

#Switch: {
	name:     string & =~"^[^-\" \t\r\n]+$"
	level?:   #Level
	alias?:   string & =~"^[^-\" \t\r\n]+$"
	summary?: string
}

#Command: {
	keyword:          string & =~"^[^ \t\r\n]+$"
	summary?:         string
	argument?:        #Level
	argName?:         string
	emptyArgMessage?: string
	run?:             string
	switches?: [...#Switch]
}

commands: [...#Command]
`

func decodeCUE(path string, data []byte) ([]fileCommand, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(cueSchema, cue.Filename("grammar-schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("invalid grammar schema: %v", err)
	}
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("invalid grammar file: %v", err)
	}
	if !v.LookupPath(cue.ParsePath("commands")).Exists() {
		return nil, fmt.Errorf("missing required field: commands")
	}
	u := schema.Unify(v)
	if err := u.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid grammar file: %v", err)
	}
	var fs fileSet
	if err := u.LookupPath(cue.ParsePath("commands")).Decode(&fs.Commands); err != nil {
		return nil, fmt.Errorf("invalid value for commands: %v", err)
	}
	return fs.Commands, nil
}
