// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/meta"
)

const bashCompletionScript = `# bash completion for lingodiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_lingodiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "align diff fill flatten reset save sync tree completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--attrs -a --chop --color -c --filter -f --output -o --padding --schema --sort -s --titles -t --tldr"

    case "$cmd" in
        align)
            local opts="$common --missing -m --root -r"
            ;;
        diff)
            local opts="$common --delta -d --ignore --root -r --watch -w"
            ;;
        fill)
            local opts="--root -r --tldr"
            ;;
        flatten|tree)
            local opts="$common"
            ;;
        reset)
            local opts="--tldr"
            ;;
        save)
            local opts="--check --tldr"
            ;;
        sync)
            local opts="$common --root -r --write"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--root" || "$prev" == "-r" || "$cmd" == "tree" ]]; then
        COMPREPLY=( $(compgen -o dirnames -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Documents are files, local or s3://bucket/key.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -o filenames -F _lingodiff lingodiff
`

const zshCompletionScript = `#compdef lingodiff

_lingodiff() {
  local -a cmds
  cmds=(
    'align:line up source and target keys side by side'
    'diff:classify the changes between two documents'
    'fill:type in the translations B is missing'
    'flatten:list the leaves of a document by dotted path'
    'reset:overwrite B with the text of A'
    'save:write stdin to a document'
    'sync:report target keys that are missing or extra'
    'tree:list the documents under a directory'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '--chop[shorten keys by their shared prefix]'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--padding[spaces between columns]:padding'
  '--schema[dump schema]'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'lingodiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    align)
      _arguments -C \
        $common \
        '(-m --missing)'{-m,--missing}'[only keys the target lacks]' \
        '(-r --root)'{-r,--root}'[picker directory]:dir:_directories' \
        '1:A:_files' '2:B:_files'
      ;;
    diff)
      _arguments -C \
        $common \
        '(-d --delta)'{-d,--delta}'[structural delta view]' \
        '--ignore[keys left out of the delta]:keys' \
        '(-r --root)'{-r,--root}'[picker directory]:dir:_directories' \
        '(-w --watch)'{-w,--watch}'[re-run on change]' \
        '1:A:_files' '2:B:_files'
      ;;
    fill)
      _arguments -C \
        '(-r --root)'{-r,--root}'[picker directory]:dir:_directories' \
        '1:A:_files' '2:B:_files'
      ;;
    flatten)
      _arguments -C $common '1:A:_files'
      ;;
    reset)
      _arguments -C '1:A:_files' '2:B:_files'
      ;;
    save)
      _arguments -C '--check[refuse input that does not parse]' '1:PATH:_files'
      ;;
    sync)
      _arguments -C \
        $common \
        '(-r --root)'{-r,--root}'[picker directory]:dir:_directories' \
        '--write[rewrite B without extra keys]' \
        '1:A:_files' '2:B:_files'
      ;;
    tree)
      _arguments -C $common '::DIR:_directories'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:file:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _lingodiff lingodiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := stdout(cmd)
	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: lingodiff completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "lingodiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
