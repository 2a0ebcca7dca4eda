package filesystem

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// DialTimeout bounds the TCP connect and SSH handshake.
const DialTimeout = 15 * time.Second

// ErrNoAuthMethods is returned when neither an SSH agent nor a default key is usable.
var ErrNoAuthMethods = errors.New("no SSH authentication methods available (tried SSH agent and default keys)")

// SFTPConnection holds an active SSH/SFTP connection.
type SFTPConnection struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	agentConn  net.Conn
}

// Connect establishes an SSH connection and opens an SFTP session.
// It authenticates with the SSH agent and default keys, and verifies the host
// against ~/.ssh/known_hosts when that file exists.
func Connect(host string, port int, user string) (*SFTPConnection, error) {
	authMethods, agentConn := sshAuthMethods()
	if len(authMethods) == 0 {
		return nil, ErrNoAuthMethods
	}

	hostKeyCallback, err := hostKeyCallback()
	if err != nil {
		closeQuietly(agentConn)
		return nil, fmt.Errorf("failed to load known_hosts: %w", err)
	}

	config := &ssh.ClientConfig{
		User:            user,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback,
		Timeout:         DialTimeout,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	sshClient, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		closeQuietly(agentConn)
		return nil, fmt.Errorf("SSH connection failed: %w", err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		closeQuietly(agentConn)

		return nil, fmt.Errorf("SFTP session creation failed: %w", err)
	}

	return &SFTPConnection{
		sshClient:  sshClient,
		sftpClient: sftpClient,
		agentConn:  agentConn,
	}, nil
}

// Client returns the underlying SFTP client.
func (c *SFTPConnection) Client() *sftp.Client {
	return c.sftpClient
}

// Close closes the SFTP session and SSH connection.
func (c *SFTPConnection) Close() error {
	var errs []error

	if c.sftpClient != nil {
		errs = append(errs, c.sftpClient.Close())
	}

	if c.sshClient != nil {
		errs = append(errs, c.sshClient.Close())
	}

	closeQuietly(c.agentConn)

	return errors.Join(errs...)
}

func closeQuietly(conn net.Conn) {
	if conn != nil {
		_ = conn.Close()
	}
}

// hostKeyCallback verifies against ~/.ssh/known_hosts, or accepts any key
// when there is no known_hosts file.
func hostKeyCallback() (ssh.HostKeyCallback, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // no home directory to hold known_hosts
	}

	knownHostsPath := filepath.Join(homeDir, ".ssh", "known_hosts")
	if _, err := os.Stat(knownHostsPath); err != nil {
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // same as ssh with StrictHostKeyChecking=no
	}

	callback, err := knownhosts.New(knownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", knownHostsPath, err)
	}

	return callback, nil
}

// sshAuthMethods returns SSH authentication methods in priority order:
// 1. SSH agent
// 2. Default SSH keys
// The agent connection, if any, must be closed by the caller.
func sshAuthMethods() ([]ssh.AuthMethod, net.Conn) {
	var authMethods []ssh.AuthMethod

	agentAuth, agentConn := trySSHAgent()
	if agentAuth != nil {
		authMethods = append(authMethods, agentAuth)
	}

	authMethods = append(authMethods, tryDefaultSSHKeys()...)

	return authMethods, agentConn
}

// trySSHAgent attempts to connect to the SSH agent.
func trySSHAgent() (ssh.AuthMethod, net.Conn) {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil, nil
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, nil
	}

	agentClient := agent.NewClient(conn)

	return ssh.PublicKeysCallback(agentClient.Signers), conn
}

// tryDefaultSSHKeys loads unencrypted keys from the default locations.
func tryDefaultSSHKeys() []ssh.AuthMethod {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	sshDir := filepath.Join(homeDir, ".ssh")

	keyFiles := []string{
		filepath.Join(sshDir, "id_ed25519"),
		filepath.Join(sshDir, "id_rsa"),
		filepath.Join(sshDir, "id_ecdsa"),
	}

	var authMethods []ssh.AuthMethod

	for _, keyPath := range keyFiles {
		keyData, err := os.ReadFile(keyPath)
		if err != nil {
			continue
		}

		// Password-protected keys are skipped.
		signer, err := ssh.ParsePrivateKey(keyData)
		if err != nil {
			continue
		}

		authMethods = append(authMethods, ssh.PublicKeys(signer))
	}

	return authMethods
}
