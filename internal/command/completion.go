package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/meta"
)

const bashCompletionScript = `# bash completion for slugger
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_slugger()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "add diff flatten get merge rm set stat examples completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --filter -f --output -o --sort -s --titles -t"
    local src="--format --locked --name -n --profile --region"

    case "$cmd" in
        get)
            local opts="$common $src --default"
            ;;
        rm)
            local opts="$common $src --tree"
            ;;
        merge)
            local opts="$common $src --create"
            ;;
        add|set)
            local opts="$common $src --string"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common $src"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
            return 0
            ;;
        --format)
            COMPREPLY=( $(compgen -W "yaml json hcl" -- "$cur") )
            return 0
            ;;
        --sort|-s)
            COMPREPLY=( $(compgen -W "slug -slug value -value" -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # SOURCE and PATCH arguments are files.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _slugger slugger
`

const zshCompletionScript = `#compdef slugger

_slugger() {
  local -a cmds
  cmds=(
    'add:add a scalar at a new slug'
    'diff:structural diff of two sources'
    'flatten:list every slug and its scalar value'
    'get:resolve a slug'
    'merge:merge a patch document into a tree'
    'rm:remove a scalar or tree'
    'set:update an existing scalar'
    'stat:summarize a source'
    'examples:show example usages'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort rows]:sort:(slug -slug value -value)'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--format[source format]:format:(yaml json hcl)'
  '--locked[load read-only]'
  '(-n --name)'{-n,--name}'[document name]:name'
  '--profile[AWS profile]:profile'
  '--region[AWS region]:region'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'slugger commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    get)
      _arguments -C $common '--default[value when missing]:value' '1:source:_files' '2:slug'
      ;;
    add|set)
      _arguments -C $common '--string[keep VALUE as a string]' '1:source:_files' '2:slug' '3:value'
      ;;
    rm)
      _arguments -C $common '--tree[remove a tree]' '1:source:_files' '2:slug'
      ;;
    merge)
      _arguments -C $common '--create[add the tree when missing]' '1:source:_files' '2:slug' '3:patch:_files'
      ;;
    diff)
      _arguments -C $common '1:left:_files' '2:right:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '1:source:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _slugger slugger
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := stdout(GetMeta(cmd))

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: slugger completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "slugger completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
