package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// iv-hello prints the environment it received.
	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvFile, EnvFile, EnvCurrency, EnvCurrency)

	helloPath := filepath.Join(tempDir, "iv-hello")
	srcFile := helloPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("Failed to write iv-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile iv-hello: %v", err)
	}

	ivPath := filepath.Join(tempDir, "iv")
	build = exec.Command("go", "build", "-o", ivPath, "../iv")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile iv binary: %v", err)
	}

	expectedFile := filepath.Join(tempDir, "portfolio.csv")
	iv := exec.Command(ivPath, "-f", expectedFile, "-currency", "XYZ", "hello", "world")
	iv.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}
	iv.Dir = tempDir

	var stdout, stderr bytes.Buffer
	iv.Stdout = &stdout
	iv.Stderr = &stderr
	if err := iv.Run(); err != nil {
		t.Fatalf("iv command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvFile + "=" + expectedFile,
		EnvCurrency + "=XYZ",
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("no-such-extension", nil); found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}
