package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/winutf8io"
)

func main() {
	// Recover the wide command line before anything else so flags and
	// operands arrive as UTF-8 and later output runs in UTF-8 mode.
	args, err := winutf8io.Args()
	if err != nil {
		args = os.Args
	}

	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	var (
		verbose     = fs.Bool("v", false, "Verbose logging to stderr")
		interactive = fs.Bool("i", false, "Interactive inspector with TUI")
	)
	fs.Usage = usage
	fs.Parse(args[1:])

	if *verbose {
		if logger, lerr := zap.NewDevelopment(); lerr == nil {
			winutf8io.SetLogger(logger)
			defer logger.Sync()
			if err != nil {
				logger.Warn("argument recovery failed, using os.Args", zap.Error(err))
			}
		}
	}

	if *interactive {
		if err := runInteractive(args); err != nil {
			winutf8io.Eprintf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if fs.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	if err := run(args, fs.Arg(0), fs.Args()[1:]); err != nil {
		winutf8io.Eprintf("Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	winutf8io.Eprintf("Usage: utf8io [-v] <command> [operands]\n")
	winutf8io.Eprintf("       utf8io -i  (interactive inspector)\n\n")
	winutf8io.Eprintf("Commands:\n")
	winutf8io.Eprintf("  args                 print the recovered arguments\n")
	winutf8io.Eprintf("  width                print the console width\n")
	winutf8io.Eprintf("  len <text>...        print wide character counts\n")
	winutf8io.Eprintf("  stat <path>          print file status\n")
	winutf8io.Eprintf("  chmod <mode> <path>  change permissions (octal)\n")
	winutf8io.Eprintf("  touch <path> [secs]  set times to now or to unix seconds\n")
	winutf8io.Eprintf("  rm <path>            remove a file\n")
	winutf8io.Eprintf("  mv <old> <new>       rename a file\n")
	winutf8io.Eprintf("  cat <path>           print a file\n")
}

func run(args []string, cmd string, operands []string) error {
	need := func(n int) error {
		if len(operands) < n {
			return fmt.Errorf("%s: expected %d operand(s), got %d", cmd, n, len(operands))
		}
		return nil
	}

	switch cmd {
	case "args":
		for i, a := range args {
			winutf8io.Printf("[%d] %q  units=%d\n", i, a, winutf8io.Len(a))
		}

	case "width":
		winutf8io.Printf("%d\n", winutf8io.ConsoleWidth())

	case "len":
		for _, s := range operands {
			winutf8io.Printf("%d\t%s\n", winutf8io.Len(s), s)
		}

	case "stat":
		if err := need(1); err != nil {
			return err
		}
		st, err := winutf8io.Stat(operands[0])
		if err != nil {
			return err
		}
		winutf8io.Printf("File:  %s\n", operands[0])
		winutf8io.Printf("Size:  %d\n", st.Size)
		winutf8io.Printf("Mode:  %v\n", st.Mode)
		winutf8io.Printf("Links: %d\n", st.Nlink)
		winutf8io.Printf("Dir:   %t\n", st.IsDir)
		winutf8io.Printf("Atime: %s\n", formatUnix(st.Atime))
		winutf8io.Printf("Mtime: %s\n", formatUnix(st.Mtime))
		winutf8io.Printf("Ctime: %s\n", formatUnix(st.Ctime))

	case "chmod":
		if err := need(2); err != nil {
			return err
		}
		mode, err := strconv.ParseInt(operands[0], 8, 32)
		if err != nil {
			return fmt.Errorf("chmod: invalid mode %q: %w", operands[0], err)
		}
		return winutf8io.Chmod(operands[1], int(mode))

	case "touch":
		if err := need(1); err != nil {
			return err
		}
		if len(operands) == 1 {
			return winutf8io.Utime(operands[0], nil)
		}
		secs, err := strconv.ParseInt(operands[1], 10, 64)
		if err != nil {
			return fmt.Errorf("touch: invalid time %q: %w", operands[1], err)
		}
		return winutf8io.Utime(operands[0], &winutf8io.Utimbuf{Actime: secs, Modtime: secs})

	case "rm":
		if err := need(1); err != nil {
			return err
		}
		return winutf8io.Unlink(operands[0])

	case "mv":
		if err := need(2); err != nil {
			return err
		}
		return winutf8io.Rename(operands[0], operands[1])

	case "cat":
		if err := need(1); err != nil {
			return err
		}
		f, err := winutf8io.Open(operands[0], "rb")
		if err != nil {
			return err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", operands[0], err)
		}
		if _, err := winutf8io.Printf("%s", data); err != nil {
			return err
		}
		if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
			winutf8io.Printf("\n")
		}

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func formatUnix(secs int64) string {
	return time.Unix(secs, 0).Format(time.RFC3339)
}
