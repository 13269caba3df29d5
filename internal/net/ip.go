package net

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
)

// ShareURL is the link other machines on the LAN open to reach the web pad
// listening on port.
func ShareURL(port int) (string, error) {
	if port <= 0 || port > 65535 {
		return "", fmt.Errorf("invalid pad port %d", port)
	}
	ip, err := lanIPv4()
	if err != nil {
		return "", fmt.Errorf("could not find LAN address: %w", err)
	}
	return padURL(ip, port), nil
}

func padURL(ip net.IP, port int) string {
	u := url.URL{Scheme: "http", Host: net.JoinHostPort(ip.String(), strconv.Itoa(port)), Path: "/"}
	return u.String()
}

// lanIPv4 prefers the address of the default route and falls back to the
// first non-loopback interface address, then loopback.
func lanIPv4() (net.IP, error) {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err == nil {
		defer conn.Close()
		if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok && addr.IP.To4() != nil {
			return addr.IP.To4(), nil
		}
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}
	if ip := firstIPv4(addrs); ip != nil {
		return ip, nil
	}
	slog.Warn("no LAN address found, sharing loopback", "component", "net")
	return net.IPv4(127, 0, 0, 1).To4(), nil
}

func firstIPv4(addrs []net.Addr) net.IP {
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4
		}
	}
	return nil
}
